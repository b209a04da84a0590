package employeeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmployeeID(t *testing.T) {
	cases := []struct {
		line string
		want string
		ok   bool
	}{
		{"12345 - John Smith", "12345", true},
		{"jsmith 12345", "12345", true},
		{"ID 12 dept 34", "12", true},
		{"emp 007 Bond", "007", true},
		{"123-456", "123", true},
		{"no digits here", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ExtractEmployeeID(tc.line)
		assert.Equal(t, tc.ok, ok, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}

func TestExtractEmployeeIDIgnoresNonASCIIDigits(t *testing.T) {
	_, ok := ExtractEmployeeID("Ann ١٢٣")
	assert.False(t, ok)
}

func TestRemainder(t *testing.T) {
	assert.Equal(t, "John Smith", Remainder("12345 - John Smith"))
	assert.Equal(t, "jsmith", Remainder("jsmith 12345"))
	assert.Equal(t, "ID  dept", Remainder("ID 12 dept 34"))
	assert.Equal(t, "", Remainder("123-456"))
	assert.Equal(t, "", Remainder(" - "))
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "jsmith", NormalizeUsername("John Smith"))
	assert.Equal(t, "jsmith", NormalizeUsername("jsmith99"))
	assert.Equal(t, "bob", NormalizeUsername("  bob  "))
	assert.Equal(t, "alee", NormalizeUsername("Ann   Lee"))
	assert.Equal(t, "jsmith", NormalizeUsername("J. Smith"))
	assert.Equal(t, "mobrien", NormalizeUsername("Mary Ellen O'Brien"))
	assert.Equal(t, "jos", NormalizeUsername("José"))
	assert.Equal(t, "", NormalizeUsername(""))
}

func TestNormalizeUsernameGuardsEmptyTokens(t *testing.T) {
	username, ok := normalizeUsername("   ")
	assert.False(t, ok)
	assert.Empty(t, username)

	assert.NotPanics(t, func() { NormalizeUsername("\t \t") })
}

func TestNormalizeFullName(t *testing.T) {
	assert.Equal(t, "John Smith", NormalizeFullName("john smith"))
	assert.Equal(t, "John Smith", NormalizeFullName("JOHN   SMITH"))
	assert.Equal(t, "Ann Lee", NormalizeFullName("  ann\tlee "))
	assert.Equal(t, "Éva Kovács", NormalizeFullName("éva KOVÁCS"))
	assert.Equal(t, "", NormalizeFullName("   "))
}

func TestNormalizationIsAFixedPoint(t *testing.T) {
	dir := DedupeByEmployeeID([]string{
		"12345 - John Smith",
		"jsmith 12345",
		"99 Ann Lee",
		"99 alee",
		"7 mary ellen o'brien",
	})

	for _, e := range dir.Entries() {
		assert.Equal(t, e.Username, NormalizeUsername(e.Username), e.EmployeeID)
		assert.Equal(t, e.FullName, NormalizeFullName(e.FullName), e.EmployeeID)
	}
}
