package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aashish23092/directory-dedupe/cli"
	"github.com/Aashish23092/directory-dedupe/client"
	"github.com/Aashish23092/directory-dedupe/config"
	"github.com/Aashish23092/directory-dedupe/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(func(cfg *config.Config) *service.DirectoryService {
		// Tesseract for scanned pages, gozxing for badge QR codes
		tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)

		return service.NewDirectoryService(
			tesseractClient,
			service.NewPDFProcessor(),
			service.NewBadgeDecoder(),
		)
	})

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
