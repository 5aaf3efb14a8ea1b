package models

import "strings"

// RepoLink is a declared logical name to source URL association
type RepoLink struct {
	// Name is the logical key from the links file (e.g., "core")
	Name string
	// URL is the source URL (e.g., "https://github.com/org/core-repo")
	URL string
}

// NewRepoLink creates a new RepoLink
func NewRepoLink(name, url string) RepoLink {
	return RepoLink{
		Name: name,
		URL:  url,
	}
}

// RepoName returns the last "/" segment of the URL, which is also the
// expected directory name of the local checkout
func (l RepoLink) RepoName() string {
	parts := strings.Split(l.URL, "/")
	return parts[len(parts)-1]
}
