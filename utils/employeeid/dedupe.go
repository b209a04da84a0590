package employeeid

import (
	"slices"
	"strings"
)

// Placeholders for fields no entry has supplied yet.
const (
	UnknownUsername = "(unknown)"
	NoFullName      = "(not provided)"
)

// Record is the best-known identity for one employee ID.
type Record struct {
	Username string
	FullName string
}

// Entry pairs an employee ID with its merged record.
type Entry struct {
	EmployeeID string
	Record
}

// Directory is the result of DedupeByEmployeeID. It is not modified after
// it is returned.
type Directory struct {
	entries   []Entry
	index     map[string]int
	processed int
}

// DedupeByEmployeeID merges entries that mention the same employee ID.
//
// Each line contributes its first digit run as the ID. The rest of the
// line, digits removed and hyphens read as spaces, updates the record:
// several words set both the full name and the username, a single word
// only the username. Later lines win field by field.
func DedupeByEmployeeID(entries []string) *Directory {
	records := make(map[string]*Record)
	processed := 0

	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		id, ok := ExtractEmployeeID(entry)
		if !ok {
			continue
		}
		processed++

		rec, exists := records[id]
		if !exists {
			rec = &Record{Username: UnknownUsername, FullName: NoFullName}
			records[id] = rec
		}

		rest := Remainder(entry)
		if rest == "" {
			continue
		}

		if strings.Contains(rest, " ") {
			rec.FullName = NormalizeFullName(rest)
		}
		if username, ok := normalizeUsername(rest); ok {
			rec.Username = username
		}
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	dir := &Directory{
		entries:   make([]Entry, len(ids)),
		index:     make(map[string]int, len(ids)),
		processed: processed,
	}
	for i, id := range ids {
		dir.entries[i] = Entry{EmployeeID: id, Record: *records[id]}
		dir.index[id] = i
	}
	return dir
}

// Entries returns the records ordered by employee ID as strings,
// so "10" comes before "9".
func (d *Directory) Entries() []Entry {
	return slices.Clone(d.entries)
}

// Lookup returns the record stored for id.
func (d *Directory) Lookup(id string) (Record, bool) {
	i, ok := d.index[id]
	if !ok {
		return Record{}, false
	}
	return d.entries[i].Record, true
}

// Processed is the number of lines that carried an employee ID.
func (d *Directory) Processed() int { return d.processed }

// Unique is the number of distinct employee IDs.
func (d *Directory) Unique() int { return len(d.entries) }

// Duplicates is the number of lines merged into an earlier record.
func (d *Directory) Duplicates() int { return d.processed - len(d.entries) }
