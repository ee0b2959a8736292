package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gotracs/pkg/asm"
)

const exampleSource = `ORG 0x000
START WB 0x05
      BR END
END   EOP
`

const exampleListing = "0x00 0x30\t0x01 0x05\n" +
	"0x02 0x18\t0x03 0x04\n" +
	"0x04 0xf8\t0x05 0x00\n"

func TestRunAssemble(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "example.asm")
	if err := os.WriteFile(srcPath, []byte(exampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runAssemble(srcPath, ""); err != nil {
		t.Fatalf("runAssemble() error = %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "example.txt"))
	if err != nil {
		t.Fatalf("reading listing: %v", err)
	}
	if string(out) != exampleListing {
		t.Errorf("listing = %q, want %q", string(out), exampleListing)
	}
}

func TestRunAssembleExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "example.asm")
	if err := os.WriteFile(srcPath, []byte(exampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "custom-listing.txt")
	if err := runAssemble(srcPath, outPath); err != nil {
		t.Fatalf("runAssemble() error = %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading listing: %v", err)
	}
	if string(out) != exampleListing {
		t.Errorf("listing = %q, want %q", string(out), exampleListing)
	}
}

func TestRunAssembleMissingSource(t *testing.T) {
	err := runAssemble(filepath.Join(t.TempDir(), "absent.asm"), "")
	if !errors.Is(err, asm.ErrSourceUnreadable) {
		t.Errorf("runAssemble() error = %v, want %v", err, asm.ErrSourceUnreadable)
	}
}

func TestRunAssembleBadProgramWritesNothing(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "broken.asm")
	if err := os.WriteFile(srcPath, []byte("ORG 0x00\nBR NOWHERE\nEOP\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "broken.txt")
	err := runAssemble(srcPath, outPath)
	if !errors.Is(err, asm.ErrUnknownLabel) {
		t.Fatalf("runAssemble() error = %v, want %v", err, asm.ErrUnknownLabel)
	}

	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("a failed run left %s behind", outPath)
	}
}

func TestRunAssembleUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "example.asm")
	if err := os.WriteFile(srcPath, []byte(exampleSource), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "no-such-dir", "out.txt")
	err := runAssemble(srcPath, outPath)
	if !errors.Is(err, asm.ErrOutputUnwritable) {
		t.Fatalf("runAssemble() error = %v, want %v", err, asm.ErrOutputUnwritable)
	}

	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("a failed run left %s behind", outPath)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prog.asm", "prog.txt"},
		{"prog.s", "prog.txt"},
		{"prog", "prog.txt"},
		{"prog.tracs.asm", "prog.tracs.txt"},
		{filepath.Join("some", "dir", "prog.asm"), filepath.Join("some", "dir", "prog.txt")},
	}
	for _, tc := range tests {
		if got := defaultOutputPath(tc.in); got != tc.want {
			t.Errorf("defaultOutputPath(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
