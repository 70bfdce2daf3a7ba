package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

// RepoLocator is a canonical (owner, name) pair of a GitHub repository.
type RepoLocator struct {
	Owner string
	Name  string
}

func (x RepoLocator) FullName() types.RepoFullName {
	return types.RepoFullName(x.Owner + "/" + x.Name)
}

var (
	ptnSSHRepoURL  = regexp.MustCompile(`^git@github\.com:([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)$`)
	ptnHTTPRepoURL = regexp.MustCompile(`^https?://github\.com/([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)/?$`)
)

// ParseRepoURL parses a repository locator string into a RepoLocator.
// Accepted forms:
//   - git@github.com:owner/repo[.git]
//   - http(s)://github.com/owner/repo[.git][/]
//
// Syntactically different but equivalent inputs (trailing slash, .git suffix,
// http vs https) normalize to the same locator. Any other shape fails with
// types.ErrValidationFailed.
func ParseRepoURL(repoURL string) (*RepoLocator, error) {
	url := strings.TrimSpace(repoURL)

	// A name of exactly ".git" strips to nothing; such a locator is invalid
	// rather than partially filled.
	if m := ptnSSHRepoURL.FindStringSubmatch(url); m != nil {
		if name := stripGitSuffix(m[2]); name != "" {
			return &RepoLocator{Owner: m[1], Name: name}, nil
		}
	}

	if m := ptnHTTPRepoURL.FindStringSubmatch(url); m != nil {
		if name := stripGitSuffix(m[2]); name != "" {
			return &RepoLocator{Owner: m[1], Name: name}, nil
		}
	}

	return nil, goerr.Wrap(types.ErrValidationFailed, "invalid GitHub repository URL",
		goerr.V("url", repoURL),
	)
}

func stripGitSuffix(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".git") {
		return name[:len(name)-4]
	}
	return name
}

// NormalizeOrg trims an optional organization value. An empty or
// whitespace-only value means "no organization".
func NormalizeOrg(org string) string {
	return strings.TrimSpace(org)
}
