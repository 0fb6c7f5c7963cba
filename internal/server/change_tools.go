package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dejo1307/ghmcp/internal/github"
	"github.com/dejo1307/ghmcp/internal/gitrepo"
	"github.com/dejo1307/ghmcp/internal/shape"
)

// compareCommitsArgs are the arguments for the github_compare_commits tool.
type compareCommitsArgs struct {
	Base          string `json:"base" jsonschema:"required,Base ref (e.g. 'main')."`
	Head          string `json:"head" jsonschema:"required,Head ref (e.g. 'feature-branch')."`
	Repo          string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath      string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	MaxFiles      int    `json:"max_files,omitempty" jsonschema:"Max changed files to include (1..300)."`
	MaxPatchChars int    `json:"max_patch_chars,omitempty" jsonschema:"Character budget per file patch (200..10000)."`
}

// compareResult is the shaped github_compare_commits result.
type compareResult struct {
	Repo          string            `json:"repo"`
	Base          string            `json:"base"`
	Head          string            `json:"head"`
	Status        string            `json:"status"`
	AheadBy       int               `json:"ahead_by"`
	BehindBy      int               `json:"behind_by"`
	TotalCommits  int               `json:"total_commits"`
	FilesCount    int               `json:"files_count"`
	FilesReturned int               `json:"files_returned"`
	FilesDropped  int               `json:"files_dropped"`
	Files         []github.DiffFile `json:"files"`
	HTMLURL       string            `json:"html_url,omitempty"`
	PermalinkURL  string            `json:"permalink_url,omitempty"`
}

func (s *Server) handleCompareCommits(ctx context.Context, req *mcp.CallToolRequest, args compareCommitsArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_compare_commits"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	maxFiles := args.MaxFiles
	if maxFiles <= 0 {
		maxFiles = s.cfg.Limits.CompareMaxFiles
	}
	maxFiles = shape.Clamp(maxFiles, 1, 300)

	maxPatchChars := args.MaxPatchChars
	if maxPatchChars <= 0 {
		maxPatchChars = s.cfg.Limits.PatchMaxChars
	}
	maxPatchChars = shape.Clamp(maxPatchChars, 200, 10000)

	cmp, err := s.gh.Compare(ctx, repo.String(), args.Base, args.Head)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	files, dropped := shape.CapList(cmp.Files, maxFiles)
	outFiles := make([]github.DiffFile, 0, len(files))
	for _, f := range files {
		f.Patch, _ = shape.TruncateText(f.Patch, maxPatchChars)
		outFiles = append(outFiles, f)
	}

	return jsonResult(tool, compareResult{
		Repo:          repo.String(),
		Base:          args.Base,
		Head:          args.Head,
		Status:        cmp.Status,
		AheadBy:       cmp.AheadBy,
		BehindBy:      cmp.BehindBy,
		TotalCommits:  cmp.TotalCommits,
		FilesCount:    len(cmp.Files),
		FilesReturned: len(outFiles),
		FilesDropped:  dropped,
		Files:         outFiles,
		HTMLURL:       cmp.HTMLURL,
		PermalinkURL:  cmp.PermalinkURL,
	}), nil, nil
}

// listCommitsArgs are the arguments for the github_list_commits tool.
type listCommitsArgs struct {
	Repo     string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	Branch   string `json:"branch,omitempty" jsonschema:"Branch name to list commits from."`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max commits to return (1..100)."`
}

func (s *Server) handleListCommits(ctx context.Context, req *mcp.CallToolRequest, args listCommitsArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_list_commits"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	limit := args.Limit
	if limit <= 0 {
		limit = s.cfg.Limits.CommitsLimit
	}
	n := shape.Clamp(limit, 1, 100)

	commits, err := s.gh.ListCommits(ctx, repo.String(), listQuery(n, map[string]string{
		"sha": args.Branch,
	}))
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	commits, dropped := shape.CapList(commits, n)
	return jsonResult(tool, map[string]any{
		"repo":    repo.String(),
		"count":   len(commits),
		"dropped": dropped,
		"commits": commits,
	}), nil, nil
}

// listPullsArgs are the arguments for the github_list_pulls tool.
type listPullsArgs struct {
	Repo     string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	State    string `json:"state,omitempty" jsonschema:"Filter by state: open, closed, or all (default open)."`
	Base     string `json:"base,omitempty" jsonschema:"Filter by base branch."`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max pull requests to return (1..100)."`
}

func (s *Server) handleListPulls(ctx context.Context, req *mcp.CallToolRequest, args listPullsArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_list_pulls"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	state := args.State
	if state == "" {
		state = "open"
	}
	limit := args.Limit
	if limit <= 0 {
		limit = s.cfg.Limits.ListLimit
	}
	n := shape.Clamp(limit, 1, 100)

	q := listQuery(n, map[string]string{
		"base": args.Base,
	})
	q.Set("state", state)
	q.Set("sort", "updated")
	q.Set("direction", "desc")

	pulls, err := s.gh.ListPulls(ctx, repo.String(), q)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	pulls, dropped := shape.CapList(pulls, n)
	for i := range pulls {
		pulls[i].Body, _ = shape.TruncateText(pulls[i].Body, s.cfg.Limits.BodyMaxChars)
	}

	return jsonResult(tool, map[string]any{
		"repo":    repo.String(),
		"count":   len(pulls),
		"dropped": dropped,
		"pulls":   pulls,
	}), nil, nil
}
