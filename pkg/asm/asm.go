package asm

import "errors"

// Assemble runs the full pipeline over raw source text: normalize the
// lines, resolve addresses and labels, validate every operand, encode.
// A failing stage stops the run and its error joins every diagnostic
// that stage produced, so callers report all of a program's problems
// from one call.
func Assemble(src string) (Listing, error) {
	lines := Parse(src)

	table, err := Resolve(lines)
	if err != nil {
		return nil, err
	}

	if err := Validate(lines, table); err != nil {
		return nil, err
	}

	listing, diags := Encode(lines, table)
	if len(diags) > 0 {
		return listing, errors.Join(diags...)
	}
	return listing, nil
}
