package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	p := filepath.Join(parts...)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindGitDir_DirectoryAtStart(t *testing.T) {
	root := t.TempDir()
	want := mkdir(t, root, ".git")

	got, ok := findGitDir(root)
	if !ok {
		t.Fatal("expected to find git dir")
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindGitDir_WalksUpward(t *testing.T) {
	root := t.TempDir()
	want := mkdir(t, root, ".git")
	nested := mkdir(t, root, "a", "b", "c")

	got, ok := findGitDir(nested)
	if !ok {
		t.Fatal("expected to find git dir from nested path")
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindGitDir_NotFound(t *testing.T) {
	root := t.TempDir()
	if got, ok := findGitDir(root); ok {
		t.Errorf("expected not found, got %q", got)
	}
}

func TestFindGitDir_WorktreePointerRelative(t *testing.T) {
	// The relative gitdir must resolve against the directory holding the
	// .git file, not against wherever the walk started.
	root := t.TempDir()
	actual := mkdir(t, root, "main", ".git")
	worktree := mkdir(t, root, "wt")
	writeFile(t, filepath.Join(worktree, ".git"), "gitdir: ../main/.git\n")
	nested := mkdir(t, worktree, "src", "pkg")

	got, ok := findGitDir(nested)
	if !ok {
		t.Fatal("expected worktree pointer to resolve")
	}
	if got != actual {
		t.Errorf("got %q, want %q", got, actual)
	}
}

func TestFindGitDir_WorktreePointerAbsolute(t *testing.T) {
	root := t.TempDir()
	actual := mkdir(t, root, "elsewhere", "repo.git")
	worktree := mkdir(t, root, "wt")
	writeFile(t, filepath.Join(worktree, ".git"), "GITDIR: "+actual+"\n")

	got, ok := findGitDir(worktree)
	if !ok {
		t.Fatal("expected case-insensitive pointer prefix to resolve")
	}
	if got != actual {
		t.Errorf("got %q, want %q", got, actual)
	}
}

func TestFindGitDir_WorktreePointerTargetMissing(t *testing.T) {
	worktree := t.TempDir()
	writeFile(t, filepath.Join(worktree, ".git"), "gitdir: ../nope/.git\n")

	if got, ok := findGitDir(worktree); ok {
		t.Errorf("expected not found for dangling pointer, got %q", got)
	}
}

func TestFindGitDir_NonPointerFileKeepsWalking(t *testing.T) {
	root := t.TempDir()
	want := mkdir(t, root, ".git")
	inner := mkdir(t, root, "inner")
	writeFile(t, filepath.Join(inner, ".git"), "this is not a pointer\n")

	got, ok := findGitDir(inner)
	if !ok {
		t.Fatal("expected walk to continue past non-pointer .git file")
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindGitDir_EmptyPointerStops(t *testing.T) {
	worktree := t.TempDir()
	writeFile(t, filepath.Join(worktree, ".git"), "gitdir:\n")

	if got, ok := findGitDir(worktree); ok {
		t.Errorf("expected not found for empty pointer, got %q", got)
	}
}
