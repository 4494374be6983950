package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumCmd(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) []string
		want    string
		wantErr bool
	}{
		{
			name: "threshold flag",
			setup: func(t *testing.T) []string {
				return []string{"sum", "-t", "600", "-i", writeTranscript(t, scenarioA)}
			},
			want: "1182",
		},
		{
			name: "positional transcript and default threshold",
			setup: func(t *testing.T) []string {
				return []string{"sum", writeTranscript(t, sampleSession)}
			},
			want: "95437",
		},
		{
			name: "threshold from config file",
			setup: func(t *testing.T) []string {
				cfg := filepath.Join(t.TempDir(), "shelltree.yaml")
				require.NoError(t, os.WriteFile(cfg, []byte("threshold: 600\n"), 0644))
				return []string{"sum", "--config", cfg, writeTranscript(t, scenarioA)}
			},
			want: "1182",
		},
		{
			name: "malformed lines are skipped",
			setup: func(t *testing.T) []string {
				return []string{"sum", "-t", "600", writeTranscript(t, "$ cd\n"+scenarioA+"garbage\n")}
			},
			want: "1182",
		},
		{
			name: "nonexistent transcript",
			setup: func(t *testing.T) []string {
				return []string{"sum", "-i", "/nonexistent/terminal-output.txt"}
			},
			wantErr: true,
		},
		{
			name: "missing explicit config",
			setup: func(t *testing.T) []string {
				return []string{"sum", "--config", "/nonexistent/shelltree.yaml", writeTranscript(t, scenarioA)}
			},
			wantErr: true,
		},
		{
			name: "negative threshold",
			setup: func(t *testing.T) []string {
				return []string{"sum", "--threshold=-1", writeTranscript(t, scenarioA)}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.setup(t)...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestSumCmd_Stdin(t *testing.T) {
	out, err := run(t, strings.NewReader(scenarioA), "sum", "-t", "600", "-i", "-")
	require.NoError(t, err)
	assert.Equal(t, "1182\n", out)
}

func TestSumCmd_GitRepo(t *testing.T) {
	repoDir := t.TempDir()
	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "session.txt"), []byte(scenarioA), 0644))
	_, err = worktree.Add("session.txt")
	require.NoError(t, err)
	_, err = worktree.Commit("add session", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	out, err := run(t, nil, "sum", "-t", "600", "--repo", repoDir, "--path", "session.txt")
	require.NoError(t, err)
	assert.Equal(t, "1182\n", out)
}
