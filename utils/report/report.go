package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Aashish23092/directory-dedupe/dto"
	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-runewidth"
)

const columnWidth = 10

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteTable prints the users scheduled for deletion followed by the
// summary counts.
func WriteTable(w io.Writer, resp *dto.DedupeResponse) error {
	var b strings.Builder

	b.WriteString("\nUsers scheduled for deletion:\n")
	fmt.Fprintf(&b, "%s %s Full Name\n", pad("Emp ID"), pad("Username"))
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")

	for _, u := range resp.Users {
		fmt.Fprintf(&b, "%s %s %s\n", pad(u.EmployeeID), pad(u.Username), u.FullName)
	}

	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "Total entries processed: %d\n", resp.Summary.TotalProcessed)
	fmt.Fprintf(&b, "Unique employee IDs:     %d\n", resp.Summary.UniqueIDs)
	fmt.Fprintf(&b, "Duplicate entries removed: %d\n", resp.Summary.DuplicatesFound)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON prints resp as indented JSON.
func WriteJSON(w io.Writer, resp *dto.DedupeResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// pad left-justifies s to the column width, measured in display cells.
func pad(s string) string {
	return runewidth.FillRight(s, columnWidth)
}
