package gitrepo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoRepo is returned when neither an explicit reference nor local git
// metadata yields a usable repository identifier. All inference failures
// collapse to this one error: a discovered-but-unparsable remote URL is
// treated the same as no remote at all.
var ErrNoRepo = errors.New("cannot resolve repo: provide 'repo' parameter or run inside a git repository")

// Resolve produces the repository a call should address. An explicit
// reference, when present, is normalized via ParseRepo and wins; its
// parse failure is reported precisely. Otherwise the repository is
// inferred from git metadata under rootPath (or the current working
// directory): find the git dir, read its config, take the origin remote's
// url (falling back to the first remote), and normalize that.
//
// Inference reads only .git/config directly — no git subprocess, so a
// stdio server can never hang on one.
func Resolve(explicit, rootPath string) (Repo, error) {
	if s := strings.TrimSpace(explicit); s != "" {
		return ParseRepo(s)
	}

	root := cleanPath(rootPath)
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Repo{}, ErrNoRepo
		}
		root = cwd
	}
	if _, err := os.Stat(root); err != nil {
		return Repo{}, ErrNoRepo
	}

	gitDir, ok := findGitDir(root)
	if !ok {
		return Repo{}, ErrNoRepo
	}

	data, err := os.ReadFile(filepath.Join(gitDir, "config"))
	if err != nil {
		return Repo{}, ErrNoRepo
	}

	url, ok := parseRemoteURL(decodeLenient(data), "origin")
	if !ok {
		return Repo{}, ErrNoRepo
	}

	repo, err := ParseRepo(url)
	if err != nil {
		return Repo{}, ErrNoRepo
	}
	return repo, nil
}

// cleanPath normalizes a caller-supplied filesystem path: surrounding
// whitespace and one layer of quotes stripped, then lexically cleaned.
func cleanPath(p string) string {
	p = unquote(strings.TrimSpace(p))
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}
