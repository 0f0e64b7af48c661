package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inkwell-md/inkwell/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Vault)
	assert.Equal(t, 60*time.Second, cfg.RetryBudget)
	assert.Equal(t, "2006-01-02", cfg.DateLayout)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inkwell.yml"),
		[]byte("vault: /srv/vault\nretry_budget: 5s\ndate_layout: \"20060102\"\n"), 0644))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/vault", cfg.Vault)
	assert.Equal(t, 5*time.Second, cfg.RetryBudget)
	assert.Equal(t, "20060102", cfg.DateLayout)
}

func TestCheckCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"valid path", []string{"notes/${date}/draft.md"}, false},
		{"unknown token", []string{"notes/${bogus}.md"}, true},
		{"valid filename", []string{"--filename", "draft"}, false},
		{"bad filename", []string{"--filename", "dra|ft"}, true},
		{"tokens rejected", []string{"--filename", "--no-tokens", "${date}"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := CheckCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRenderCmd(t *testing.T) {
	chdir(t, t.TempDir())

	root := RootCmd()
	root.AddCommand(RenderCmd())

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"render", "${folderName}/${fileName}.${originalCopiedFileExtension}",
		"--path", "notes/projects/report.md",
		"--from", "chart.png",
	})

	require.NoError(t, root.Execute())
	assert.Equal(t, "projects/report.png\n", out.String())
}

func TestApplyCmd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	store := vault.NewFileStore(dir)
	require.NoError(t, store.Create(context.Background(), "note.md", "ABCDEFGHIJ"))

	changeFile := filepath.Join(dir, "changes.yml")
	require.NoError(t, os.WriteFile(changeFile, []byte(
		"document: note.md\nchanges:\n"+
			"  - {start: 2, end: 4, old: CD, new: XY}\n"+
			"  - {start: 6, end: 8, old: GH, new: ZZ}\n"), 0644))

	root := RootCmd()
	root.AddCommand(ApplyCmd())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"apply", changeFile, "--vault", dir})

	require.NoError(t, root.Execute())

	got, err := store.Read(context.Background(), "note.md")
	require.NoError(t, err)
	assert.Equal(t, "ABXYEFZZIJ", got)
}
