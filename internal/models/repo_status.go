package models

// NotFoundNotes is the default note for repos that were not probed further
const NotFoundNotes = "Repository not found"

// RepoStatus is the reconciled state of one declared repository
type RepoStatus struct {
	// Link is the declaration this status was computed for
	Link RepoLink
	// RepoName is the directory name derived from the link URL
	RepoName string
	// Path is the expected local checkout path
	Path string
	// Exists is true if Path is present
	Exists bool
	// IsGit is true if Path contains a .git marker
	IsGit bool
	// LastSync is the last commit date query result
	LastSync SyncResult
	// Validation outcome
	Validation Validation
	// Health classification
	Health Health
	// Notes is a short human-readable summary
	Notes string
	// FileCount is set only when the repo was counted
	FileCount *int
	// Branch is the checked out branch, empty if unknown
	Branch string
}

// NewRepoStatus creates a RepoStatus with the not-found defaults
func NewRepoStatus(link RepoLink, path string) RepoStatus {
	return RepoStatus{
		Link:       link,
		RepoName:   link.RepoName(),
		Path:       path,
		LastSync:   NotQueried,
		Validation: NotChecked,
		Health:     HealthUnknown,
		Notes:      NotFoundNotes,
	}
}

// Available reports whether the repo is present and under git.
// An empty repo is still available.
func (s RepoStatus) Available() bool {
	return s.Exists && s.IsGit
}

// WithFileCount sets the file count and returns the RepoStatus
func (s RepoStatus) WithFileCount(n int) RepoStatus {
	s.FileCount = &n
	return s
}
