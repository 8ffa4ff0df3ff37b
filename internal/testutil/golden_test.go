package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := repoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod at %s: %v", root, err)
	}
}

func TestAssertGoldenMatches(t *testing.T) {
	AssertGolden(t, "panes.golden", "╭─ a ────╮╭─ b ────╮\n│x       ││y       │\n│        ││        │\n╰────────╯╰────────╯\n")
}
