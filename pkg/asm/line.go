package asm

import (
	"strings"

	"gotracs/pkg/isa"
)

// SourceLine is one normalized source line split into its three
// fields. LineNo is the 1-based physical line in the original text.
type SourceLine struct {
	Label     string
	Operation string
	Operand   string
	LineNo    int
}

// Parse normalizes raw source text into its ordered instruction lines.
// Comments start at ';' and run to end of line; lines that strip to
// nothing are dropped. The first token of a line is the operation when
// it names a known instruction, otherwise it is a label and the
// operation and operand follow it. Tokens past the third are ignored.
func Parse(src string) []SourceLine {
	var lines []SourceLine

	for i, raw := range strings.Split(src, "\n") {
		text := stripComment(raw)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		ln := SourceLine{LineNo: i + 1}
		if isa.IsMnemonic(fields[0]) {
			ln.Operation = fields[0]
			if len(fields) > 1 {
				ln.Operand = fields[1]
			}
		} else {
			ln.Label = fields[0]
			if len(fields) > 1 {
				ln.Operation = fields[1]
			}
			if len(fields) > 2 {
				ln.Operand = fields[2]
			}
		}

		lines = append(lines, ln)
	}

	return lines
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// instructionLines returns the lines that occupy address slots: every
// parsed line after the first. The first line is reserved for the ORG
// directive and never assembles, directive present or not.
func instructionLines(lines []SourceLine) []SourceLine {
	if len(lines) <= 1 {
		return nil
	}
	return lines[1:]
}
