package gitrepo

import (
	"os"
	"path/filepath"
	"strings"
)

const gitdirPrefix = "gitdir:"

// findGitDir walks upward from start (inclusive) looking for the git
// directory that holds the repository config. A .git directory is
// returned directly. A .git regular file is a worktree pointer: its
// content, after a case-insensitive "gitdir:" prefix, names the real git
// directory, with relative paths resolved against the directory holding
// the pointer file. A pointer whose target does not exist, or any read
// failure along the way, is reported as not found — discovery is
// best-effort and "no repository here" is a normal outcome.
func findGitDir(start string) (string, bool) {
	dir := start
	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() {
				return gitPath, true
			}
			if info.Mode().IsRegular() {
				target, ok, isPointer := readWorktreePointer(dir, gitPath)
				if isPointer {
					return target, ok
				}
				// A .git file that is not a pointer is ignored and the
				// walk continues upward.
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// readWorktreePointer reads a .git pointer file found in dir. The third
// return reports whether the file was a pointer at all (read errors count
// as pointers that failed, so the walk stops rather than climbing past a
// broken worktree).
func readWorktreePointer(dir, gitFile string) (target string, ok bool, isPointer bool) {
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return "", false, true
	}

	content := strings.TrimSpace(decodeLenient(data))
	if len(content) < len(gitdirPrefix) || !strings.EqualFold(content[:len(gitdirPrefix)], gitdirPrefix) {
		return "", false, false
	}

	target = strings.TrimSpace(content[len(gitdirPrefix):])
	if target == "" {
		return "", false, true
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	target = filepath.Clean(target)

	if _, err := os.Stat(target); err != nil {
		return "", false, true
	}
	return target, true, true
}

// decodeLenient turns raw file bytes into text, replacing invalid byte
// sequences instead of failing.
func decodeLenient(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
