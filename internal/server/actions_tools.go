package server

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dejo1307/ghmcp/internal/github"
	"github.com/dejo1307/ghmcp/internal/gitrepo"
	"github.com/dejo1307/ghmcp/internal/shape"
)

// listWorkflowRunsArgs are the arguments for the github_list_workflow_runs tool.
type listWorkflowRunsArgs struct {
	Repo       string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath   string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	WorkflowID string `json:"workflow_id,omitempty" jsonschema:"Workflow file name or numeric id (e.g. 'ci.yml' or '123456')."`
	Branch     string `json:"branch,omitempty" jsonschema:"Filter by branch."`
	Status     string `json:"status,omitempty" jsonschema:"Filter by status (e.g. completed, in_progress, queued)."`
	Event      string `json:"event,omitempty" jsonschema:"Filter by event (e.g. push, pull_request)."`
	Limit      int    `json:"limit,omitempty" jsonschema:"Max runs to return (1..100)."`
}

func (s *Server) handleListWorkflowRuns(ctx context.Context, req *mcp.CallToolRequest, args listWorkflowRunsArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_list_workflow_runs"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	limit := args.Limit
	if limit <= 0 {
		limit = s.cfg.Limits.ListLimit
	}
	n := shape.Clamp(limit, 1, 100)

	workflowID := strings.TrimSpace(args.WorkflowID)
	runs, err := s.gh.ListWorkflowRuns(ctx, repo.String(), workflowID, listQuery(n, map[string]string{
		"branch": args.Branch,
		"status": args.Status,
		"event":  args.Event,
	}))
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	runs, dropped := shape.CapList(runs, n)
	result := map[string]any{
		"repo":    repo.String(),
		"count":   len(runs),
		"dropped": dropped,
		"runs":    runs,
	}
	if workflowID != "" {
		result["workflow_id"] = workflowID
	}
	return jsonResult(tool, result), nil, nil
}

// getWorkflowRunArgs are the arguments for the github_get_workflow_run tool.
type getWorkflowRunArgs struct {
	RunID       int64  `json:"run_id" jsonschema:"required,Workflow run id."`
	Repo        string `json:"repo,omitempty" jsonschema:"Repository as 'owner/repo' or a GitHub URL. Inferred from root_path when omitted."`
	RootPath    string `json:"root_path,omitempty" jsonschema:"Local path whose git origin remote identifies the repository."`
	IncludeJobs *bool  `json:"include_jobs,omitempty" jsonschema:"Include a jobs/steps summary (default true)."`
	MaxJobs     int    `json:"max_jobs,omitempty" jsonschema:"Cap on jobs returned."`
	MaxSteps    int    `json:"max_steps,omitempty" jsonschema:"Cap on total steps returned across all jobs."`
}

// jobsSummary is the shaped jobs section of github_get_workflow_run.
type jobsSummary struct {
	JobsCount     int          `json:"jobs_count"`
	JobsReturned  int          `json:"jobs_returned"`
	StepsReturned int          `json:"steps_returned"`
	Truncated     bool         `json:"truncated"`
	Items         []github.Job `json:"items"`
}

func (s *Server) handleGetWorkflowRun(ctx context.Context, req *mcp.CallToolRequest, args getWorkflowRunArgs) (*mcp.CallToolResult, any, error) {
	const tool = "github_get_workflow_run"

	repo, err := gitrepo.Resolve(args.Repo, args.RootPath)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	run, err := s.gh.GetWorkflowRun(ctx, repo.String(), args.RunID)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	if args.IncludeJobs != nil && !*args.IncludeJobs {
		return jsonResult(tool, map[string]any{
			"repo": repo.String(),
			"run":  run,
		}), nil, nil
	}

	jobs, err := s.gh.ListJobs(ctx, repo.String(), args.RunID)
	if err != nil {
		return errorResult(tool, err), nil, nil
	}

	maxJobs := args.MaxJobs
	if maxJobs <= 0 {
		maxJobs = s.cfg.Limits.MaxJobs
	}
	maxSteps := args.MaxSteps
	if maxSteps <= 0 {
		maxSteps = s.cfg.Limits.MaxSteps
	}

	summary := summarizeJobs(jobs, maxJobs, maxSteps)
	return jsonResult(tool, map[string]any{
		"repo": repo.String(),
		"run":  run,
		"jobs": summary,
	}), nil, nil
}

// summarizeJobs caps the jobs list and spends one shared step budget
// across the kept jobs, in order. The summary is marked truncated when
// either cap cut something off.
func summarizeJobs(jobs []github.Job, maxJobs, maxSteps int) jobsSummary {
	kept, droppedJobs := shape.CapList(jobs, maxJobs)

	out := make([]github.Job, 0, len(kept))
	stepsReturned := 0
	for _, job := range kept {
		if stepsReturned >= maxSteps {
			break
		}
		budget := maxSteps - stepsReturned
		steps, _ := shape.CapList(job.Steps, budget)
		job.Steps = steps
		stepsReturned += len(steps)
		out = append(out, job)
	}

	return jobsSummary{
		JobsCount:     len(jobs),
		JobsReturned:  len(out),
		StepsReturned: stepsReturned,
		Truncated:     droppedJobs > 0 || len(out) < len(kept) || stepsReturned >= maxSteps,
		Items:         out,
	}
}
