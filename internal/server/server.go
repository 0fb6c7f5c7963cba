package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dejo1307/ghmcp/internal/config"
	"github.com/dejo1307/ghmcp/internal/github"
)

// Server wraps the MCP server and connects it to the GitHub client.
type Server struct {
	mcp *mcp.Server
	gh  *github.Client
	cfg *config.Config
}

// New creates a new MCP server wired to the given GitHub client.
func New(gh *github.Client, cfg *config.Config) (*Server, error) {
	s := &Server{
		gh:  gh,
		cfg: cfg,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "github-mcp",
		Version: "0.1.0",
	}, nil)

	s.mcp = mcpServer
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds the read-only GitHub tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_repo_info",
		Description: "Get basic repository info: description, default branch, language, license, topics, and counters.",
	}, s.handleRepoInfo)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_get_file",
		Description: "Get a text file from a GitHub repo via the Contents API. Directories come back as a listing; file text is truncated at a character budget.",
	}, s.handleGetFile)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_compare_commits",
		Description: "Compare two commits/branches/tags. Returns per-file diff stats with patches truncated per file.",
	}, s.handleCompareCommits)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_list_workflow_runs",
		Description: "List GitHub Actions workflow runs, optionally filtered by workflow, branch, status, or event.",
	}, s.handleListWorkflowRuns)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_get_workflow_run",
		Description: "Get one workflow run, optionally with a capped jobs/steps summary.",
	}, s.handleGetWorkflowRun)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_list_issues",
		Description: "List issues from a repo, optionally including pull requests.",
	}, s.handleListIssues)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_get_issue",
		Description: "Get a single issue or PR by number together with its comments.",
	}, s.handleGetIssue)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_list_commits",
		Description: "List recent commits, optionally from a specific branch.",
	}, s.handleListCommits)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "github_list_pulls",
		Description: "List pull requests, optionally filtered by state and base branch.",
	}, s.handleListPulls)
}

// errorResult converts any failure into the uniform error payload every
// tool returns: a JSON object naming the failing tool. Errors never
// escape to the transport.
func errorResult(tool string, err error) *mcp.CallToolResult {
	data, merr := json.Marshal(map[string]string{
		"error": err.Error(),
		"tool":  tool,
	})
	if merr != nil {
		data = []byte(fmt.Sprintf(`{"error": %q, "tool": %q}`, err.Error(), tool))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
		IsError: true,
	}
}

// jsonResult marshals v as the tool's result text.
func jsonResult(tool string, v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(tool, fmt.Errorf("marshal result: %w", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
}

// listQuery assembles the common list-endpoint query parameters, skipping
// blank filter values.
func listQuery(perPage int, filters map[string]string) url.Values {
	q := url.Values{}
	q.Set("per_page", fmt.Sprintf("%d", perPage))
	for key, value := range filters {
		if v := strings.TrimSpace(value); v != "" {
			q.Set(key, v)
		}
	}
	return q
}
