package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("Solar panels reduce energy cost.\n\nWind turbines are noisy but efficient."), 0o644))
	cfg := filepath.Join(dir, "missing.yaml")

	out, err := runRoot(t, "ask", "--config", cfg, doc, "solar", "energy")
	require.NoError(t, err)
	assert.Equal(t, "Solar panels reduce energy cost.\n", out)

	out, err = runRoot(t, "ask", "--config", cfg, "--segmentation", "sentence", "--top-k", "5", "--highlight", doc, "wind")
	require.NoError(t, err)
	assert.Equal(t, "**Wind** turbines are noisy but efficient.\n", out)
}

func TestAskCommandRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, "ask", "--config", filepath.Join(dir, "missing.yaml"), "--segmentation", "page", "doc.txt", "q")
	assert.Error(t, err)
}

func TestAskCommandMissingDocument(t *testing.T) {
	dir := t.TempDir()
	_, err := runRoot(t, "ask", "--config", filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "nope.txt"), "solar")
	assert.Error(t, err)
}
