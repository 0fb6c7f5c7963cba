package gitrepo

import "testing"

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name   string
		config string
		remote string
		want   string
		found  bool
	}{
		{
			name: "origin preferred over earlier remote",
			config: `[remote "upstream"]
	url = https://github.com/upstream/widgets.git
	fetch = +refs/heads/*:refs/remotes/upstream/*
[remote "origin"]
	url = https://github.com/acme/widgets.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`,
			remote: "origin",
			want:   "https://github.com/acme/widgets.git",
			found:  true,
		},
		{
			name: "origin preferred regardless of order",
			config: `[remote "origin"]
	url = https://github.com/acme/widgets.git
[remote "upstream"]
	url = https://github.com/upstream/widgets.git
`,
			remote: "origin",
			want:   "https://github.com/acme/widgets.git",
			found:  true,
		},
		{
			name: "fallback to first remote when origin absent",
			config: `[core]
	bare = false
[remote "fork"]
	url = git@github.com:fork/widgets.git
`,
			remote: "origin",
			want:   "git@github.com:fork/widgets.git",
			found:  true,
		},
		{
			name: "case-insensitive header and key",
			config: `[Remote "Origin"]
	URL = https://github.com/acme/widgets.git
`,
			remote: "Origin",
			want:   "https://github.com/acme/widgets.git",
			found:  true,
		},
		{
			name: "url before any section does not match",
			config: `url = https://github.com/evil/decoy.git
[core]
	bare = false
`,
			remote: "origin",
			found:  false,
		},
		{
			name: "url in unrelated section does not match",
			config: `[submodule "vendor"]
	url = https://github.com/vendor/dep.git
[core]
	bare = false
`,
			remote: "origin",
			found:  false,
		},
		{
			name: "remote section without url",
			config: `[remote "origin"]
	fetch = +refs/heads/*:refs/remotes/origin/*
`,
			remote: "origin",
			found:  false,
		},
		{
			name:   "empty config",
			config: "",
			remote: "origin",
			found:  false,
		},
		{
			name: "blank lines and comments tolerated",
			config: `# global config

[remote "origin"]
	; pushurl omitted

	url = https://github.com/acme/widgets.git
`,
			remote: "origin",
			want:   "https://github.com/acme/widgets.git",
			found:  true,
		},
		{
			name: "section boundary ends the remote",
			config: `[remote "origin"]
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "main"]
	url = not-a-remote-url
`,
			remote: "origin",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := parseRemoteURL(tt.config, tt.remote)
			if found != tt.found {
				t.Fatalf("found = %v, want %v (got %q)", found, tt.found, got)
			}
			if found && got != tt.want {
				t.Errorf("url = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRemoteURL_FallbackPicksFirstInFileOrder(t *testing.T) {
	// Known fragility: when origin is absent the first remote in file
	// order wins, whatever its name.
	config := `[remote "zeta"]
	url = https://github.com/zeta/widgets.git
[remote "alpha"]
	url = https://github.com/alpha/widgets.git
`
	got, found := parseRemoteURL(config, "origin")
	if !found {
		t.Fatal("expected a fallback url")
	}
	if got != "https://github.com/zeta/widgets.git" {
		t.Errorf("url = %q, want the first remote's url", got)
	}
}
