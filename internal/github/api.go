package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// RepoInfo fetches basic repository metadata.
func (c *Client) RepoInfo(ctx context.Context, repo string) (*RepoInfo, error) {
	raw, err := c.get(ctx, "/repos/"+repo, nil)
	if err != nil {
		return nil, err
	}

	var w repoInfoWire
	if err := decode(raw, &w); err != nil {
		return nil, fmt.Errorf("decode repo info: %w", err)
	}
	return &RepoInfo{
		FullName:      w.FullName,
		Description:   w.Description,
		DefaultBranch: w.DefaultBranch,
		Language:      w.Language,
		License:       w.License.Name,
		Topics:        w.Topics,
		Stars:         w.Stars,
		Forks:         w.Forks,
		OpenIssues:    w.OpenIssues,
		HTMLURL:       w.HTMLURL,
		CloneURL:      w.CloneURL,
		UpdatedAt:     w.UpdatedAt,
	}, nil
}

// GetContents fetches a path via the Contents API. A directory comes
// back as Dir, a file as File with its base64 payload decoded to text,
// and anything else is passed through as Raw.
func (c *Client) GetContents(ctx context.Context, repo, path, ref string) (*Contents, error) {
	query := url.Values{}
	if ref != "" {
		query.Set("ref", ref)
	}

	raw, err := c.get(ctx, "/repos/"+repo+"/contents/"+path, query)
	if err != nil {
		return nil, err
	}

	if list, ok := raw.([]any); ok {
		var entries []DirEntry
		if err := decode(list, &entries); err != nil {
			return nil, fmt.Errorf("decode directory listing: %w", err)
		}
		return &Contents{Dir: entries}, nil
	}

	var w struct {
		Type        string `json:"type"`
		Encoding    string `json:"encoding"`
		Content     string `json:"content"`
		Path        string `json:"path"`
		SHA         string `json:"sha"`
		Size        int    `json:"size"`
		DownloadURL string `json:"download_url"`
		HTMLURL     string `json:"html_url"`
	}
	if err := decode(raw, &w); err != nil {
		return nil, fmt.Errorf("decode contents: %w", err)
	}
	if w.Type != "file" {
		return &Contents{Raw: raw}, nil
	}

	file := &ContentFile{
		Path:        w.Path,
		SHA:         w.SHA,
		Size:        w.Size,
		DownloadURL: w.DownloadURL,
		HTMLURL:     w.HTMLURL,
	}
	if strings.EqualFold(w.Encoding, "base64") && w.Content != "" {
		// The API wraps the base64 payload in newlines.
		compact := strings.Map(dropSpace, w.Content)
		b, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return nil, fmt.Errorf("decode file content: %w", err)
		}
		file.Text = strings.ToValidUTF8(string(b), "�")
		file.Inline = true
	}
	return &Contents{File: file}, nil
}

func dropSpace(r rune) rune {
	switch r {
	case '\n', '\r', ' ', '\t':
		return -1
	}
	return r
}

// Compare compares two refs.
func (c *Client) Compare(ctx context.Context, repo, base, head string) (*CompareResult, error) {
	raw, err := c.get(ctx, "/repos/"+repo+"/compare/"+base+"..."+head, nil)
	if err != nil {
		return nil, err
	}

	var result CompareResult
	if err := decode(raw, &result); err != nil {
		return nil, fmt.Errorf("decode compare: %w", err)
	}
	return &result, nil
}

// ListWorkflowRuns lists Actions runs, scoped to one workflow when
// workflowID (a file name or numeric id) is given.
func (c *Client) ListWorkflowRuns(ctx context.Context, repo, workflowID string, query url.Values) ([]WorkflowRun, error) {
	path := "/repos/" + repo + "/actions/runs"
	if workflowID != "" {
		path = "/repos/" + repo + "/actions/workflows/" + workflowID + "/runs"
	}

	raw, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected workflow runs payload")
	}
	list := m["workflow_runs"]
	if list == nil {
		list = m["runs"]
	}

	runs := []WorkflowRun{}
	if err := decode(list, &runs); err != nil {
		return nil, fmt.Errorf("decode workflow runs: %w", err)
	}
	return runs, nil
}

// GetWorkflowRun fetches one Actions run.
func (c *Client) GetWorkflowRun(ctx context.Context, repo string, runID int64) (*WorkflowRun, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/repos/%s/actions/runs/%d", repo, runID), nil)
	if err != nil {
		return nil, err
	}

	var run WorkflowRun
	if err := decode(raw, &run); err != nil {
		return nil, fmt.Errorf("decode workflow run: %w", err)
	}
	return &run, nil
}

// ListJobs lists the jobs of one Actions run.
func (c *Client) ListJobs(ctx context.Context, repo string, runID int64) ([]Job, error) {
	query := url.Values{"per_page": {"100"}}
	raw, err := c.get(ctx, fmt.Sprintf("/repos/%s/actions/runs/%d/jobs", repo, runID), query)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected jobs payload")
	}

	jobs := []Job{}
	if err := decode(m["jobs"], &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

// ListIssues lists issues; pull requests appear in the same endpoint and
// are flagged via IsPR (the payload carries a pull_request key for them).
func (c *Client) ListIssues(ctx context.Context, repo string, query url.Values) ([]Issue, error) {
	raw, err := c.get(ctx, "/repos/"+repo+"/issues", query)
	if err != nil {
		return nil, err
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected issues payload")
	}

	issues := make([]Issue, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var w issueWire
		if err := decode(m, &w); err != nil {
			return nil, fmt.Errorf("decode issue: %w", err)
		}
		_, isPR := m["pull_request"]
		issues = append(issues, w.toIssue(isPR))
	}
	return issues, nil
}

// GetIssue fetches one issue or pull request by number.
func (c *Client) GetIssue(ctx context.Context, repo string, number int) (*Issue, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/repos/%s/issues/%d", repo, number), nil)
	if err != nil {
		return nil, err
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected issue payload")
	}
	var w issueWire
	if err := decode(m, &w); err != nil {
		return nil, fmt.Errorf("decode issue: %w", err)
	}
	_, isPR := m["pull_request"]
	issue := w.toIssue(isPR)
	return &issue, nil
}

// ListIssueComments lists the comments of one issue or pull request.
func (c *Client) ListIssueComments(ctx context.Context, repo string, number int) ([]IssueComment, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number), nil)
	if err != nil {
		return nil, err
	}

	var wires []issueCommentWire
	if err := decode(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]IssueComment, 0, len(wires))
	for _, w := range wires {
		comments = append(comments, IssueComment{
			ID:        w.ID,
			User:      w.User.Login,
			Body:      w.Body,
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
			HTMLURL:   w.HTMLURL,
		})
	}
	return comments, nil
}

// ListCommits lists recent commits.
func (c *Client) ListCommits(ctx context.Context, repo string, query url.Values) ([]Commit, error) {
	raw, err := c.get(ctx, "/repos/"+repo+"/commits", query)
	if err != nil {
		return nil, err
	}

	var wires []commitWire
	if err := decode(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode commits: %w", err)
	}

	commits := make([]Commit, 0, len(wires))
	for _, w := range wires {
		commits = append(commits, w.toCommit())
	}
	return commits, nil
}

// ListPulls lists pull requests.
func (c *Client) ListPulls(ctx context.Context, repo string, query url.Values) ([]PullRequest, error) {
	raw, err := c.get(ctx, "/repos/"+repo+"/pulls", query)
	if err != nil {
		return nil, err
	}

	var wires []pullWire
	if err := decode(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode pulls: %w", err)
	}

	pulls := make([]PullRequest, 0, len(wires))
	for _, w := range wires {
		pulls = append(pulls, w.toPullRequest())
	}
	return pulls, nil
}
