package github

import "strings"

// RepoInfo is basic repository metadata.
type RepoInfo struct {
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"default_branch"`
	Language      string   `json:"language"`
	License       string   `json:"license"`
	Topics        []string `json:"topics"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	OpenIssues    int      `json:"open_issues"`
	HTMLURL       string   `json:"html_url"`
	CloneURL      string   `json:"clone_url"`
	UpdatedAt     string   `json:"updated_at"`
}

type repoInfoWire struct {
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"default_branch"`
	Language      string   `json:"language"`
	License       struct {
		Name string `json:"name"`
	} `json:"license"`
	Topics     []string `json:"topics"`
	Stars      int      `json:"stargazers_count"`
	Forks      int      `json:"forks_count"`
	OpenIssues int      `json:"open_issues_count"`
	HTMLURL    string   `json:"html_url"`
	CloneURL   string   `json:"clone_url"`
	UpdatedAt  string   `json:"updated_at"`
}

// ContentFile is a file fetched via the Contents API. Inline reports
// whether decoded text was returned; very large files come back without
// inline content and callers should follow DownloadURL instead.
type ContentFile struct {
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int    `json:"size"`
	Inline      bool   `json:"-"`
	Text        string `json:"-"`
	DownloadURL string `json:"download_url"`
	HTMLURL     string `json:"html_url"`
}

// DirEntry is one entry of a directory listing from the Contents API.
type DirEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Size int    `json:"size"`
}

// Contents is the result of a Contents API call: exactly one of File,
// Dir, or Raw is set. Raw carries payloads that are neither a file nor a
// directory (e.g. submodules) through unchanged.
type Contents struct {
	File *ContentFile
	Dir  []DirEntry
	Raw  any
}

// CompareResult is the two-ref comparison from the compare endpoint.
type CompareResult struct {
	Status       string     `json:"status"`
	AheadBy      int        `json:"ahead_by"`
	BehindBy     int        `json:"behind_by"`
	TotalCommits int        `json:"total_commits"`
	Files        []DiffFile `json:"files"`
	HTMLURL      string     `json:"html_url"`
	PermalinkURL string     `json:"permalink_url"`
}

// DiffFile is one changed file in a comparison.
type DiffFile struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Changes   int    `json:"changes"`
	Patch     string `json:"patch,omitempty"`
}

// WorkflowRun is one GitHub Actions run.
type WorkflowRun struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayTitle string `json:"display_title"`
	Event        string `json:"event"`
	Status       string `json:"status"`
	Conclusion   string `json:"conclusion"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	RunNumber    int    `json:"run_number"`
	HeadBranch   string `json:"head_branch"`
	HeadSHA      string `json:"head_sha"`
	HTMLURL      string `json:"html_url"`
	Attempt      int    `json:"run_attempt,omitempty"`
}

// Job is one job of a workflow run.
type Job struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Conclusion  string   `json:"conclusion"`
	StartedAt   string   `json:"started_at"`
	CompletedAt string   `json:"completed_at"`
	RunnerName  string   `json:"runner_name"`
	Labels      []string `json:"labels"`
	Steps       []Step   `json:"steps"`
}

// Step is one step of a job.
type Step struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Conclusion  string `json:"conclusion"`
	Number      int    `json:"number"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
}

// Issue is an issue or pull request from the issues endpoint; IsPR
// distinguishes the two.
type Issue struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	State     string   `json:"state"`
	IsPR      bool     `json:"is_pr"`
	User      string   `json:"user"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
	Comments  int      `json:"comments"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	HTMLURL   string   `json:"html_url"`
}

type issueWire struct {
	Number    int         `json:"number"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	State     string      `json:"state"`
	User      loginWire   `json:"user"`
	Labels    []nameWire  `json:"labels"`
	Assignees []loginWire `json:"assignees"`
	Comments  int         `json:"comments"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
	HTMLURL   string      `json:"html_url"`
}

type loginWire struct {
	Login string `json:"login"`
}

type nameWire struct {
	Name string `json:"name"`
}

func (w issueWire) toIssue(isPR bool) Issue {
	return Issue{
		Number:    w.Number,
		Title:     w.Title,
		Body:      w.Body,
		State:     w.State,
		IsPR:      isPR,
		User:      w.User.Login,
		Labels:    names(w.Labels),
		Assignees: logins(w.Assignees),
		Comments:  w.Comments,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		HTMLURL:   w.HTMLURL,
	}
}

// IssueComment is one comment on an issue or pull request.
type IssueComment struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	HTMLURL   string `json:"html_url"`
}

type issueCommentWire struct {
	ID        int64     `json:"id"`
	User      loginWire `json:"user"`
	Body      string    `json:"body"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	HTMLURL   string    `json:"html_url"`
}

// Commit is a flattened commit summary: the message is reduced to its
// first line.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	HTMLURL string `json:"html_url"`
}

type commitWire struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	HTMLURL string `json:"html_url"`
}

func (w commitWire) toCommit() Commit {
	return Commit{
		SHA:     w.SHA,
		Message: firstLine(w.Commit.Message),
		Author:  w.Commit.Author.Name,
		Date:    w.Commit.Author.Date,
		HTMLURL: w.HTMLURL,
	}
}

// PullRequest is a flattened pull request summary.
type PullRequest struct {
	Number         int      `json:"number"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	State          string   `json:"state"`
	User           string   `json:"user"`
	Draft          bool     `json:"draft"`
	Labels         []string `json:"labels"`
	Assignees      []string `json:"assignees"`
	Comments       int      `json:"comments"`
	Commits        int      `json:"commits"`
	Additions      int      `json:"additions"`
	Deletions      int      `json:"deletions"`
	ChangedFiles   int      `json:"changed_files"`
	Mergeable      *bool    `json:"mergeable"`
	MergeableState string   `json:"mergeable_state"`
	Merged         bool     `json:"merged"`
	HeadBranch     string   `json:"head_branch"`
	HeadSHA        string   `json:"head_sha"`
	BaseBranch     string   `json:"base_branch"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
	HTMLURL        string   `json:"html_url"`
}

type pullWire struct {
	Number         int         `json:"number"`
	Title          string      `json:"title"`
	Body           string      `json:"body"`
	State          string      `json:"state"`
	User           loginWire   `json:"user"`
	Draft          bool        `json:"draft"`
	Labels         []nameWire  `json:"labels"`
	Assignees      []loginWire `json:"assignees"`
	Comments       int         `json:"comments"`
	Commits        int         `json:"commits"`
	Additions      int         `json:"additions"`
	Deletions      int         `json:"deletions"`
	ChangedFiles   int         `json:"changed_files"`
	Mergeable      *bool       `json:"mergeable"`
	MergeableState string      `json:"mergeable_state"`
	Merged         bool        `json:"merged"`
	Head           refWire     `json:"head"`
	Base           refWire     `json:"base"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
	HTMLURL        string      `json:"html_url"`
}

type refWire struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

func (w pullWire) toPullRequest() PullRequest {
	return PullRequest{
		Number:         w.Number,
		Title:          w.Title,
		Body:           w.Body,
		State:          w.State,
		User:           w.User.Login,
		Draft:          w.Draft,
		Labels:         names(w.Labels),
		Assignees:      logins(w.Assignees),
		Comments:       w.Comments,
		Commits:        w.Commits,
		Additions:      w.Additions,
		Deletions:      w.Deletions,
		ChangedFiles:   w.ChangedFiles,
		Mergeable:      w.Mergeable,
		MergeableState: w.MergeableState,
		Merged:         w.Merged,
		HeadBranch:     w.Head.Ref,
		HeadSHA:        w.Head.SHA,
		BaseBranch:     w.Base.Ref,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
		HTMLURL:        w.HTMLURL,
	}
}

func names(ww []nameWire) []string {
	out := make([]string, 0, len(ww))
	for _, w := range ww {
		out = append(out, w.Name)
	}
	return out
}

func logins(ww []loginWire) []string {
	out := make([]string, 0, len(ww))
	for _, w := range ww {
		out = append(out, w.Login)
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}
	return s
}
