package dto

// DedupeRequest carries raw directory entries, one per element.
type DedupeRequest struct {
	Entries []string `json:"entries" binding:"required"`
}

type DirectoryUser struct {
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
}

type DedupeSummary struct {
	TotalProcessed  int `json:"total_entries_processed"`
	UniqueIDs       int `json:"unique_employee_ids"`
	DuplicatesFound int `json:"duplicate_entries_removed"`
}

// DedupeResponse lists the users scheduled for deletion, ordered by
// employee ID.
type DedupeResponse struct {
	Users   []DirectoryUser `json:"users"`
	Summary DedupeSummary   `json:"summary"`
	Source  string          `json:"source,omitempty"`
}
