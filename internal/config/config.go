package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the github-mcp.yaml configuration. It is built once
// at process start and passed by reference into everything that issues
// API calls; nothing mutates it afterwards.
type Config struct {
	APIBase        string `yaml:"api_base"`
	Token          string `yaml:"token"`
	SSLVerify      bool   `yaml:"ssl_verify"`
	CACertFile     string `yaml:"ca_cert_file"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	Limits         Limits `yaml:"limits"`
}

// Limits holds the default shaping budgets applied to tool results.
// Tool arguments may override the list limits per call; the budgets are
// the values used when an argument is absent.
type Limits struct {
	FileMaxChars    int `yaml:"file_max_chars"`
	CompareMaxFiles int `yaml:"compare_max_files"`
	PatchMaxChars   int `yaml:"patch_max_chars"`
	ListLimit       int `yaml:"list_limit"`
	CommitsLimit    int `yaml:"commits_limit"`
	MaxJobs         int `yaml:"max_jobs"`
	MaxSteps        int `yaml:"max_steps"`
	DirMaxEntries   int `yaml:"dir_max_entries"`
	CommentsLimit   int `yaml:"comments_limit"`
	BodyMaxChars    int `yaml:"body_max_chars"`
	ErrorBodyChars  int `yaml:"error_body_chars"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		APIBase:        "https://api.github.com",
		SSLVerify:      true,
		TimeoutSeconds: 30,
		UserAgent:      "mcp-server/1.0",
		Limits: Limits{
			FileMaxChars:    20000,
			CompareMaxFiles: 50,
			PatchMaxChars:   2000,
			ListLimit:       20,
			CommitsLimit:    10,
			MaxJobs:         50,
			MaxSteps:        200,
			DirMaxEntries:   200,
			CommentsLimit:   50,
			BodyMaxChars:    10000,
			ErrorBodyChars:  300,
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Ensure required defaults
	if cfg.APIBase == "" {
		cfg.APIBase = "https://api.github.com"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "mcp-server/1.0"
	}
	fillLimits(&cfg.Limits)

	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg. The variables match
// the deployment surface this server is launched with: GITHUB_TOKEN,
// GITHUB_API_BASE, GITHUB_SSL_VERIFY, and SSL_CERT_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("GITHUB_API_BASE"); v != "" {
		c.APIBase = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("GITHUB_SSL_VERIFY"); v != "" {
		c.SSLVerify = parseBool(v)
	}
	if v := os.Getenv("SSL_CERT_FILE"); v != "" {
		c.CACertFile = v
	}
}

// parseBool treats "false", "0", and "no" (any case) as false and
// everything else as true.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0", "no":
		return false
	}
	return true
}

func fillLimits(l *Limits) {
	d := Default().Limits
	if l.FileMaxChars <= 0 {
		l.FileMaxChars = d.FileMaxChars
	}
	if l.CompareMaxFiles <= 0 {
		l.CompareMaxFiles = d.CompareMaxFiles
	}
	if l.PatchMaxChars <= 0 {
		l.PatchMaxChars = d.PatchMaxChars
	}
	if l.ListLimit <= 0 {
		l.ListLimit = d.ListLimit
	}
	if l.CommitsLimit <= 0 {
		l.CommitsLimit = d.CommitsLimit
	}
	if l.MaxJobs <= 0 {
		l.MaxJobs = d.MaxJobs
	}
	if l.MaxSteps <= 0 {
		l.MaxSteps = d.MaxSteps
	}
	if l.DirMaxEntries <= 0 {
		l.DirMaxEntries = d.DirMaxEntries
	}
	if l.CommentsLimit <= 0 {
		l.CommentsLimit = d.CommentsLimit
	}
	if l.BodyMaxChars <= 0 {
		l.BodyMaxChars = d.BodyMaxChars
	}
	if l.ErrorBodyChars <= 0 {
		l.ErrorBodyChars = d.ErrorBodyChars
	}
}
