package server

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dejo1307/ghmcp/internal/github"
	"github.com/dejo1307/ghmcp/internal/gitrepo"
	"github.com/dejo1307/ghmcp/internal/shape"
)

// repoInfoArgs are the arguments for the github_repo_info tool.
type repoInfoArgs struct {
	Repo     string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
}

func (s *Server) handleRepoInfo(ctx context.Context, req *mcp.CallToolRequest, args repoInfoArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_repo_info"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	info, err := s.gh.RepoInfo(ctx, repo.String())
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	return jsonResult(tool, info), nil, nil
}

// getFileArgs are the arguments for the github_get_file tool.
type getFileArgs struct {
	Path     string `json:"path" jsonschema:"required,File path in the repo (e.g. 'README.md' or '.github/workflows/ci.yml')."`
	Repo     string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	Ref      string `json:"ref,omitempty" jsonschema:"Branch, tag, or commit SHA to read from."`
	MaxChars int    `json:"max_chars,omitempty" jsonschema:"Character budget for the returned file text (default from config)."`
}

// fileResult is the shaped github_get_file result for a regular file.
type fileResult struct {
	Repo        string `json:"repo"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int    `json:"size"`
	Ref         string `json:"ref,omitempty"`
	Truncated   bool   `json:"truncated"`
	Text        string `json:"text"`
	DownloadURL string `json:"download_url,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
}

// dirResult is the shaped github_get_file result for a directory.
type dirResult struct {
	Repo    string            `json:"repo"`
	Path    string            `json:"path"`
	Type    string            `json:"type"`
	Count   int               `json:"count"`
	Dropped int               `json:"dropped"`
	Items   []github.DirEntry `json:"items"`
}

func (s *Server) handleGetFile(ctx context.Context, req *mcp.CallToolRequest, args getFileArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_get_file"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	cleanPath := strings.TrimLeft(strings.TrimSpace(args.Path), "/")
	if cleanPath == "" {
		return errorResult(tool, errors.New("path is required")), nil, nil
	}

	contents, err := s.gh.GetContents(ctx, repo.String(), cleanPath, strings.TrimSpace(args.Ref))
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	switch {
	case contents.Dir != nil:
		items, dropped := shape.CapList(contents.Dir, s.cfg.Limits.DirMaxEntries)
		return jsonResult(tool, dirResult{
			Repo:    repo.String(),
			Path:    cleanPath,
			Type:    "dir",
			Count:   len(items),
			Dropped: dropped,
			Items:   items,
		}), nil, nil

	case contents.File != nil:
		f := contents.File
		if !f.Inline {
			// Large files come back without inline content.
			return jsonResult(tool, map[string]any{
				"repo":         repo.String(),
				"path":         cleanPath,
				"sha":          f.SHA,
				"size":         f.Size,
				"note":         "No inline content returned (file may be too large). Use download_url.",
				"download_url": f.DownloadURL,
				"html_url":     f.HTMLURL,
			}), nil, nil
		}

		maxChars := args.MaxChars
		if maxChars <= 0 {
			maxChars = s.cfg.Limits.FileMaxChars
		}
		text, truncated := shape.TruncateText(f.Text, maxChars)

		return jsonResult(tool, fileResult{
			Repo:        repo.String(),
			Path:        cleanPath,
			SHA:         f.SHA,
			Size:        f.Size,
			Ref:         strings.TrimSpace(args.Ref),
			Truncated:   truncated,
			Text:        text,
			DownloadURL: f.DownloadURL,
			HTMLURL:     f.HTMLURL,
		}), nil, nil

	default:
		// Neither file nor directory (e.g. a submodule): pass through.
		return jsonResult(tool, map[string]any{
			"repo": repo.String(),
			"path": cleanPath,
			"raw":  contents.Raw,
		}), nil, nil
	}
}
