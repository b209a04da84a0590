package employeeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(dir *Directory) []string {
	var out []string
	for _, e := range dir.Entries() {
		out = append(out, e.EmployeeID)
	}
	return out
}

func TestDedupeByEmployeeID(t *testing.T) {
	dir := DedupeByEmployeeID([]string{
		"12345 - John Smith",
		"jsmith 12345",
		"99 Ann Lee",
		"99 alee",
	})

	assert.Equal(t, []Entry{
		{EmployeeID: "12345", Record: Record{Username: "jsmith", FullName: "John Smith"}},
		{EmployeeID: "99", Record: Record{Username: "alee", FullName: "Ann Lee"}},
	}, dir.Entries())
	assert.Equal(t, 4, dir.Processed())
	assert.Equal(t, 2, dir.Unique())
	assert.Equal(t, 2, dir.Duplicates())
}

func TestDedupeSkipsBlankAndIDLessLines(t *testing.T) {
	dir := DedupeByEmployeeID([]string{
		"",
		"   ",
		"\t",
		"John Smith",
		"no id - here",
		"42 Jane Doe",
	})

	assert.Equal(t, []string{"42"}, ids(dir))
	assert.Equal(t, 1, dir.Processed())
	assert.Equal(t, 0, dir.Duplicates())
}

func TestDedupeSortsKeysAsStrings(t *testing.T) {
	dir := DedupeByEmployeeID([]string{"9 Nine", "10 Ten", "100 Hundred", "010 Padded"})

	assert.Equal(t, []string{"010", "10", "100", "9"}, ids(dir))
}

func TestDedupeKeepsSentinelsForEmptyRemainder(t *testing.T) {
	dir := DedupeByEmployeeID([]string{"123-456", "77 -"})

	rec, ok := dir.Lookup("123")
	require.True(t, ok)
	assert.Equal(t, UnknownUsername, rec.Username)
	assert.Equal(t, NoFullName, rec.FullName)

	_, ok = dir.Lookup("456")
	assert.False(t, ok, "later digit groups are never IDs")

	rec, ok = dir.Lookup("77")
	require.True(t, ok)
	assert.Equal(t, Record{Username: "(unknown)", FullName: "(not provided)"}, rec)
}

func TestDedupeSingleTokenOnlyUpdatesUsername(t *testing.T) {
	dir := DedupeByEmployeeID([]string{"5 bsmith"})

	rec, _ := dir.Lookup("5")
	assert.Equal(t, "bsmith", rec.Username)
	assert.Equal(t, NoFullName, rec.FullName)
}

func TestDedupeMergesFieldByField(t *testing.T) {
	dir := DedupeByEmployeeID([]string{
		"300 Robert Jones",
		"300 bobby",
		"300",
	})

	rec, _ := dir.Lookup("300")
	assert.Equal(t, "Robert Jones", rec.FullName, "single token keeps the full name")
	assert.Equal(t, "bobby", rec.Username, "single token overrides the username")
	assert.Equal(t, 3, dir.Processed())
	assert.Equal(t, 2, dir.Duplicates())
}

func TestDedupeLaterFullNameWins(t *testing.T) {
	dir := DedupeByEmployeeID([]string{
		"8 - jon smith",
		"Jonathan Smyth - 8",
	})

	rec, _ := dir.Lookup("8")
	assert.Equal(t, Record{Username: "jsmyth", FullName: "Jonathan Smyth"}, rec)
}

func TestDedupeMultipleDigitGroups(t *testing.T) {
	dir := DedupeByEmployeeID([]string{"ID 12 dept 34"})

	assert.Equal(t, []string{"12"}, ids(dir))
	rec, _ := dir.Lookup("12")
	assert.Equal(t, Record{Username: "idept", FullName: "Id Dept"}, rec)
}

func TestDedupeEmptyInput(t *testing.T) {
	dir := DedupeByEmployeeID(nil)

	assert.Empty(t, dir.Entries())
	assert.Equal(t, 0, dir.Processed())
	assert.Equal(t, 0, dir.Duplicates())
}

func TestDirectoryEntriesIsACopy(t *testing.T) {
	dir := DedupeByEmployeeID([]string{"1 Ann Lee"})

	entries := dir.Entries()
	entries[0].Username = "changed"

	rec, _ := dir.Lookup("1")
	assert.Equal(t, "alee", rec.Username)
}
