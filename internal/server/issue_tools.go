package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dejo1307/ghmcp/internal/github"
	"github.com/dejo1307/ghmcp/internal/gitrepo"
	"github.com/dejo1307/ghmcp/internal/shape"
)

// listIssuesArgs are the arguments for the github_list_issues tool.
type listIssuesArgs struct {
	Repo       string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath   string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	State      string `json:"state,omitempty" jsonschema:"Filter by state: open, closed, or all (default open)."`
	Labels     string `json:"labels,omitempty" jsonschema:"Comma-separated labels filter."`
	Limit      int    `json:"limit,omitempty" jsonschema:"Max issues to return (1..100)."`
	IncludePRs bool   `json:"include_prs,omitempty" jsonschema:"Include pull requests in the listing (default false)."`
}

func (s *Server) handleListIssues(ctx context.Context, req *mcp.CallToolRequest, args listIssuesArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_list_issues"

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
		"labels": args.Labels,
	})
	q.Set("state", state)
	q.Set("sort", "updated")
	q.Set("direction", "desc")

	issues, err := s.gh.ListIssues(ctx, repo.String(), q)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	items := make([]github.Issue, 0, len(issues))
	for _, it := range issues {
		if !args.IncludePRs && it.IsPR {
			continue
		}
		it.Body, _ = shape.TruncateText(it.Body, s.cfg.Limits.BodyMaxChars)
		items = append(items, it)
	}
	items, dropped := shape.CapList(items, n)

	return jsonResult(tool, map[string]any{
		"repo":    repo.String(),
		"count":   len(items),
		"dropped": dropped,
		"items":   items,
	}), nil, nil
}

// getIssueArgs are the arguments for the github_get_issue tool.
type getIssueArgs struct {
	IssueNumber int    `json:"issue_number" jsonschema:"required,Issue or PR number."`
	Repo        string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath    string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
}

// issueDetail is the shaped github_get_issue result: the issue plus its
// comments, with the comment list capped.
type issueDetail struct {
	github.Issue
	CommentsReturned []github.IssueComment `json:"comments_list"`
	CommentsDropped  int                   `json:"comments_dropped"`
}

func (s *Server) handleGetIssue(ctx context.Context, req *mcp.CallToolRequest, args getIssueArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_get_issue"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	issue, err := s.gh.GetIssue(ctx, repo.String(), args.IssueNumber)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	comments, err := s.gh.ListIssueComments(ctx, repo.String(), args.IssueNumber)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	kept, dropped := shape.CapList(comments, s.cfg.Limits.CommentsLimit)
	for i := range kept {
		kept[i].Body, _ = shape.TruncateText(kept[i].Body, s.cfg.Limits.BodyMaxChars)
	}

	detail := issueDetail{
		Issue:            *issue,
		CommentsReturned: kept,
		CommentsDropped:  dropped,
	}
	detail.Body, _ = shape.TruncateText(detail.Body, s.cfg.Limits.BodyMaxChars)

	return jsonResult(tool, map[string]any{
		"repo":  repo.String(),
		"issue": detail,
	}), nil, nil
}
