// Package gitrepo resolves the GitHub repository a tool call should
// address: an explicit owner/repo string or GitHub URL when given, offline
// inference from a local checkout's git metadata otherwise.
package gitrepo

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	ownerRepoRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
	sshRemoteRe = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
	httpURLRe   = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// Repo identifies a GitHub repository by owner and name. The zero value
// is not a valid repo; construct via ParseRepo.
type Repo struct {
	Owner string
	Name  string
}

// String renders the canonical "owner/name" form.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepo normalizes an arbitrary repository reference into a Repo.
// Accepted forms, tried in order: plain "owner/name", an SSH remote
// "git@github.com:owner/name[.git]", and an HTTP(S) URL
// "https://github.com/owner/name[.git][/]". Surrounding whitespace and
// one layer of enclosing quotes are stripped before matching. Anything
// else is an error.
func ParseRepo(s string) (Repo, error) {
	s = unquote(strings.TrimSpace(s))

	if ownerRepoRe.MatchString(s) {
		owner, name, _ := strings.Cut(s, "/")
		return Repo{Owner: owner, Name: name}, nil
	}
	if m := sshRemoteRe.FindStringSubmatch(s); m != nil {
		return Repo{Owner: m[1], Name: m[2]}, nil
	}
	if m := httpURLRe.FindStringSubmatch(s); m != nil {
		return Repo{Owner: m[1], Name: m[2]}, nil
	}
	return Repo{}, fmt.Errorf("repo must be 'owner/repo' or a GitHub URL/SSH remote, got %q", s)
}

// unquote strips a single layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
