package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchName(t *testing.T) {
	tests := []struct {
		want  string
		issue int
	}{
		{"feature/0", 0},
		{"feature/7", 7},
		{"feature/123456", 123456},
	}

	for _, tt := range tests {
		if got := BranchName(tt.issue); got != tt.want {
			t.Errorf("BranchName(%d) = %q, want %q", tt.issue, got, tt.want)
		}
	}
}

func TestBranchName_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 42, 999, 1 << 20, 1<<31 - 1} {
		got, ok := ParseIssueBranch(BranchName(n))
		if !ok {
			t.Errorf("ParseIssueBranch(BranchName(%d)) not ok", n)
			continue
		}
		if got != n {
			t.Errorf("ParseIssueBranch(BranchName(%d)) = %d", n, got)
		}
	}
}

func TestParseIssueBranch(t *testing.T) {
	tests := []struct {
		name   string
		branch string
		wantN  int
		wantOK bool
	}{
		// Valid issue branches
		{"feature/1", "feature/1", 1, true},
		{"feature/42", "feature/42", 42, true},
		{"leading zeros", "feature/007", 7, true},

		// Invalid branches
		{"main branch", "main", 0, false},
		{"empty string", "", 0, false},
		{"prefix only", "feature/", 0, false},
		{"non-numeric suffix", "feature/login", 0, false},
		{"mixed suffix", "feature/7-fix", 0, false},
		{"negative number", "feature/-7", 0, false},
		{"signed number", "feature/+7", 0, false},
		{"other prefix", "bugfix/7", 0, false},
		{"nested prefix", "my/feature/7", 0, false},
		{"fully qualified", "refs/heads/feature/7", 0, false},
		{"overflow", "feature/99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotN, gotOK := ParseIssueBranch(tt.branch)
			if gotN != tt.wantN {
				t.Errorf("ParseIssueBranch(%q) = %d, want %d", tt.branch, gotN, tt.wantN)
			}
			if gotOK != tt.wantOK {
				t.Errorf("ParseIssueBranch(%q) OK = %v, want %v", tt.branch, gotOK, tt.wantOK)
			}
		})
	}
}

func TestShortBranchName(t *testing.T) {
	assert.Equal(t, "feature/7", ShortBranchName("refs/heads/feature/7"))
	assert.Equal(t, "feature/7", ShortBranchName("feature/7"))
	assert.Equal(t, "main", ShortBranchName("refs/heads/main"))
}

func TestReviewRequestText(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
		n    int
	}{
		{"empty description", "", "closes #7", 7},
		{"with description", "desc", "desc\n\ncloses #7", 7},
		{"multiline description", "line 1\nline 2", "line 1\nline 2\n\ncloses #12", 12},
		{"whitespace is kept", " ", " \n\ncloses #1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReviewRequestText(tt.n, tt.desc))
		})
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "ghp_****", MaskToken("ghp_abcdef123456"))
	assert.Equal(t, "abcd****", MaskToken("abcde"))
	assert.Equal(t, "****", MaskToken("abcd"))
	assert.Equal(t, "****", MaskToken(""))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/cfg/config.toml", SettingsPath("/cfg"))
	assert.Equal(t, "/cfg/logs/git-issue-flow.log", GlobalLogPath("/cfg"))
	assert.Equal(t, "/cfg/logs/issue-7.log", IssueLogPath("/cfg", 7))
	assert.Equal(t, "/home/u/.config/git-issue-flow", UserConfigDir("/home/u/.config"))
}
