package asm

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// SymbolTable holds the program's base address and the address every
// label resolved to.
type SymbolTable struct {
	Origin uint16

	labels map[string]uint16
}

// LabelEntry is one resolved label.
type LabelEntry struct {
	Name    string
	Address uint16
}

// Lookup returns the address a label resolved to. Names are
// case-sensitive.
func (t *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, ok := t.labels[name]
	return addr, ok
}

// Labels returns every resolved label ordered by address.
func (t *SymbolTable) Labels() []LabelEntry {
	entries := make([]LabelEntry, 0, len(t.labels))
	for name, addr := range t.labels {
		entries = append(entries, LabelEntry{Name: name, Address: addr})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Resolve is the first pass: it reads the optional ORG directive off
// line 0, walks the instruction lines assigning each one an address
// two units apart, records every label at its line's address, and
// requires an EOP terminator somewhere in the program. All first-pass
// errors are collected and returned together.
func Resolve(lines []SourceLine) (*SymbolTable, error) {
	table := &SymbolTable{labels: make(map[string]uint16)}

	var errs []error

	if len(lines) > 0 && lines[0].Label == "ORG" {
		value, err := strconv.ParseUint(lines[0].Operation, 0, 64)
		if err != nil || value > 0xFFFF {
			errs = append(errs, fmt.Errorf("%w on line %d: %s", ErrBadOrigin, lines[0].LineNo, lines[0].Operation))
		} else {
			table.Origin = uint16(value)
		}
	}

	address := uint32(table.Origin)
	for _, ln := range instructionLines(lines) {
		if address+2 > 0x10000 {
			errs = append(errs, fmt.Errorf("%w near line %d", ErrProgramTooLarge, ln.LineNo))
			break
		}
		if ln.Label != "" {
			if _, exists := table.labels[ln.Label]; exists {
				errs = append(errs, fmt.Errorf("%w '%s' on line %d", ErrDuplicateLabel, ln.Label, ln.LineNo))
			} else {
				table.labels[ln.Label] = uint16(address)
			}
		}
		address += 2
	}

	if !hasTerminator(lines) {
		errs = append(errs, ErrMissingTerminator)
	}

	if len(errs) > 0 {
		return table, errors.Join(errs...)
	}
	return table, nil
}

func hasTerminator(lines []SourceLine) bool {
	for _, ln := range instructionLines(lines) {
		if ln.Label == "EOP" || ln.Operation == "EOP" {
			return true
		}
	}
	return false
}
