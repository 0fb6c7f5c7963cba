package gitrepo

import (
	"regexp"
	"strings"
)

var remoteSectionRe = regexp.MustCompile(`(?i)^\[remote\s+"([^"]+)"\]$`)

// parseRemoteURL extracts the url for the named remote from git config
// text. If that remote has no section, it falls back to the first
// [remote "..."] section in file order that carries a url. A missing
// remote is reported as not found, never as an error: this layer only
// answers "is there a url", the caller decides whether that matters.
//
// The parser is deliberately small: line-oriented, two passes (exact name
// then fallback), section headers and the url key matched
// case-insensitively, values whitespace-trimmed. A url line outside any
// remote section never matches.
func parseRemoteURL(configText, remoteName string) (string, bool) {
	lines := strings.Split(configText, "\n")
	targetHeader := `[remote "` + remoteName + `"]`

	// First pass: the exact remote.
	inRemote := false
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			inRemote = strings.EqualFold(s, targetHeader)
			continue
		}
		if inRemote {
			if url, ok := urlValue(s); ok {
				return url, true
			}
		}
	}

	// Second pass: first remote section of any name.
	inAnyRemote := false
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			inAnyRemote = remoteSectionRe.MatchString(s)
			continue
		}
		if inAnyRemote {
			if url, ok := urlValue(s); ok {
				return url, true
			}
		}
	}

	return "", false
}

// urlValue parses a trimmed config line of the form "url = <value>".
func urlValue(s string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(s), "url") {
		return "", false
	}
	key, value, found := strings.Cut(s, "=")
	if !found || !strings.EqualFold(strings.TrimSpace(key), "url") {
		return "", false
	}
	return strings.TrimSpace(value), true
}
