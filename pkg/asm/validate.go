package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gotracs/pkg/isa"
)

// Validate checks every instruction line against the rules the encoder
// relies on: each operand must be empty, a hex literal that fits in a
// byte, or a known label; each operation must be a known mnemonic; and
// only the branch instructions may take a label operand. Every check
// runs over the whole program before the combined error is returned,
// so one run reports every offending line.
func Validate(lines []SourceLine, table *SymbolTable) error {
	var errs []error

	for _, ln := range instructionLines(lines) {
		switch {
		case ln.Operand == "":
		case isHexLiteral(ln.Operand):
			if value, _ := hexValue(ln.Operand); value > 0xFF {
				errs = append(errs, fmt.Errorf("%w on line %d: %s", ErrOperandRange, ln.LineNo, ln.Operand))
			}
		default:
			addr, ok := table.Lookup(ln.Operand)
			if !ok {
				errs = append(errs, fmt.Errorf("%w '%s' on line %d", ErrUnknownLabel, ln.Operand, ln.LineNo))
			} else if addr > 0xFF {
				errs = append(errs, fmt.Errorf("%w on line %d: label '%s' resolves to 0x%x", ErrOperandRange, ln.LineNo, ln.Operand, addr))
			}
		}
	}

	for _, ln := range instructionLines(lines) {
		if !isa.IsMnemonic(ln.Operation) {
			errs = append(errs, fmt.Errorf("%w '%s' on line %d", ErrUnknownMnemonic, ln.Operation, ln.LineNo))
		}
		if ln.Operand == "" || isHexLiteral(ln.Operand) {
			continue
		}
		if _, ok := table.Lookup(ln.Operand); ok && !isa.IsBranch(ln.Operation) {
			errs = append(errs, fmt.Errorf("%w: %s with label '%s' on line %d", ErrIllegalLabelOperand, ln.Operation, ln.Operand, ln.LineNo))
		}
	}

	return errors.Join(errs...)
}

// isHexLiteral reports whether the operand is "0x" followed only by
// hex digits. A bare "0x" counts and has value zero.
func isHexLiteral(s string) bool {
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, r := range s[2:] {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// hexValue parses the digits after the 0x prefix. Callers check the
// literal's form with isHexLiteral first. Values too wide for uint64
// come back as the maximum value, which every range check rejects.
func hexValue(s string) (uint64, error) {
	digits := s[2:]
	if digits == "" {
		return 0, nil
	}
	return strconv.ParseUint(digits, 16, 64)
}
