package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/k0kubun/pp/v3"

	"gotracs/pkg/asm"
)

func TestRunInspect(t *testing.T) {
	pp.SetDefaultOutput(io.Discard)
	defer pp.ResetDefaultOutput()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "example.asm")
	if err := os.WriteFile(srcPath, []byte(exampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runInspect(srcPath); err != nil {
		t.Errorf("runInspect() error = %v", err)
	}
}

func TestRunInspectKeepsGoingPastBadStages(t *testing.T) {
	pp.SetDefaultOutput(io.Discard)
	defer pp.ResetDefaultOutput()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "broken.asm")
	src := "ORG 0x00\nBR NOWHERE\nFROB 0x01\n"
	if err := os.WriteFile(srcPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	// Resolution and validation both fail here; inspect still walks
	// every stage and reports rather than failing the run.
	if err := runInspect(srcPath); err != nil {
		t.Errorf("runInspect() error = %v", err)
	}
}

func TestRunInspectMissingSource(t *testing.T) {
	err := runInspect(filepath.Join(t.TempDir(), "absent.asm"))
	if !errors.Is(err, asm.ErrSourceUnreadable) {
		t.Errorf("runInspect() error = %v, want %v", err, asm.ErrSourceUnreadable)
	}
}
