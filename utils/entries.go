package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxEntryLine = 1 << 20

// ReadEntries reads directory entries one per line until the first blank
// line or EOF. The blank line itself is not returned.
func ReadEntries(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntryLine)

	var entries []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			break
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// SplitEntries splits text extracted from a document into entry lines,
// dropping blank ones.
func SplitEntries(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
