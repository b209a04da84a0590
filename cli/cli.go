package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Aashish23092/directory-dedupe/config"
	"github.com/Aashish23092/directory-dedupe/dto"
	"github.com/Aashish23092/directory-dedupe/handler"
	"github.com/Aashish23092/directory-dedupe/service"
	"github.com/Aashish23092/directory-dedupe/utils"
	"github.com/Aashish23092/directory-dedupe/utils/report"
	log "github.com/couchbase/clog"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const prompt = "Paste employee entries (one per line). Press Enter on a blank line to finish:"

// ServiceFactory builds the directory service once configuration is known.
type ServiceFactory func(cfg *config.Config) *service.DirectoryService

type app struct {
	cfg        *config.Config
	newService ServiceFactory

	file   string
	format string
	quiet  bool
	port   string
}

// NewRootCommand returns the dirdedupe command tree. Without a subcommand
// it behaves like "dirdedupe dedupe".
func NewRootCommand(newService ServiceFactory) *cobra.Command {
	a := &app{newService: newService}

	root := &cobra.Command{
		Use:   "dirdedupe",
		Short: "Deduplicate employee directory entries by employee ID",
		Long: "dirdedupe merges free-text directory entries such as \"12345 - John Smith\"\n" +
			"and \"jsmith 12345\" into one username and full name per employee ID.",
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runDedupe,
	}
	a.dedupeFlags(root)

	dedupe := &cobra.Command{
		Use:   "dedupe",
		Short: "Read entries and print the users scheduled for deletion",
		RunE:  a.runDedupe,
	}
	a.dedupeFlags(dedupe)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  a.runServe,
	}
	serve.Flags().StringVar(&a.port, "port", "", "port to listen on (overrides SERVER_PORT)")

	root.AddCommand(dedupe, serve)
	return root
}

func (a *app) dedupeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.file, "file", "f", "", "read entries from a text, PDF or image file instead of stdin")
	cmd.Flags().StringVar(&a.format, "format", "table", "output format: table or json")
	cmd.Flags().BoolVarP(&a.quiet, "quiet", "q", false, "do not print the input prompt")
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.LogFlags != "" {
		log.ParseLogFlag(cfg.LogFlags)
	}
	a.cfg = cfg
	return nil
}

func (a *app) runDedupe(cmd *cobra.Command, args []string) error {
	var write func(io.Writer, *dto.DedupeResponse) error
	switch a.format {
	case "table":
		write = report.WriteTable
	case "json":
		write = report.WriteJSON
	default:
		return fmt.Errorf("unknown format %q (want table or json)", a.format)
	}

	svc := a.newService(a.cfg)

	var resp *dto.DedupeResponse
	if a.file != "" {
		data, err := os.ReadFile(a.file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", a.file, err)
		}
		resp, err = svc.DedupeDocument(cmd.Context(), data, "")
		if err != nil {
			return fmt.Errorf("%s: %w", a.file, err)
		}
	} else {
		if !a.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), prompt)
		}
		entries, err := utils.ReadEntries(cmd.InOrStdin())
		if err != nil {
			return err
		}
		resp = svc.Dedupe(entries)
	}

	return write(cmd.OutOrStdout(), resp)
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	port := a.cfg.ServerPort
	if a.port != "" {
		port = a.port
	}

	router := NewRouter(a.newService(a.cfg), a.cfg)

	log.Printf("Starting Employee Directory Dedupe service on port %s", port)
	srv := &http.Server{Addr: ":" + port, Handler: router}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return fmt.Errorf("failed to start server: %w", err)
	case <-cmd.Context().Done():
		log.Printf("Shutting down server")
		return srv.Shutdown(context.Background())
	}
}

// NewRouter sets up the gin engine with the health check and API routes.
func NewRouter(svc *service.DirectoryService, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Employee Directory Dedupe",
		})
	})

	api := router.Group("/api/v1")
	handler.NewDirectoryHandler(svc, cfg.MaxFileSize).Register(api)

	return router
}
