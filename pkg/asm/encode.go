package asm

import (
	"fmt"
	"io"

	"gotracs/pkg/isa"
)

// EncodedInstruction is the two bytes one instruction assembles to,
// with the address of its first byte.
type EncodedInstruction struct {
	Address uint16
	Byte0   uint8
	Byte1   uint8
}

// String renders one listing line: address and byte, tab, next address
// and byte, all lowercase hex padded to two digits.
func (e EncodedInstruction) String() string {
	return fmt.Sprintf("0x%02x 0x%02x\t0x%02x 0x%02x", e.Address, e.Byte0, e.Address+1, e.Byte1)
}

// Listing is the encoded program in source order.
type Listing []EncodedInstruction

// WriteTo renders the listing as text, one instruction per line.
func (l Listing) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, ins := range l {
		n, err := fmt.Fprintf(w, "%s\n", ins)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%w: %v", ErrOutputUnwritable, err)
		}
	}
	return written, nil
}

// Encode is the second pass: it emits two bytes per instruction line,
// starting at the origin and advancing by two. Instructions that pack
// their operand combine opcode and operand byte into one word before
// the split; the others carry the opcode and the operand byte as is.
// Label operands encode as the label's resolved address.
//
// Diagnostics here mean a line slipped past validation. The line still
// occupies its address slot so later addresses stay aligned with the
// symbol table, and the remaining lines still encode.
func Encode(lines []SourceLine, table *SymbolTable) (Listing, []error) {
	var diags []error

	instructions := instructionLines(lines)
	listing := make(Listing, 0, len(instructions))
	address := uint32(table.Origin)

	for _, ln := range instructions {
		spec, ok := isa.Lookup(ln.Operation)
		if !ok {
			diags = append(diags, fmt.Errorf("%w '%s' on line %d", ErrUnknownMnemonic, ln.Operation, ln.LineNo))
			address += 2
			continue
		}

		operand, err := operandByte(ln, table)
		if err != nil {
			diags = append(diags, err)
		}

		byte0, byte1 := spec.Opcode, operand
		if spec.PacksOperand {
			byte0, byte1 = isa.Split(isa.Pack(spec.Opcode, operand))
		}

		listing = append(listing, EncodedInstruction{
			Address: uint16(address),
			Byte0:   byte0,
			Byte1:   byte1,
		})
		address += 2
	}

	return listing, diags
}

// operandByte resolves an instruction's second byte: labels by their
// address, hex literals by value, empty operands as zero.
func operandByte(ln SourceLine, table *SymbolTable) (uint8, error) {
	switch {
	case ln.Operand == "":
		return 0, nil
	case isHexLiteral(ln.Operand):
		value, err := hexValue(ln.Operand)
		if err != nil || value > 0xFF {
			return 0, fmt.Errorf("%w on line %d: %s", ErrOperandRange, ln.LineNo, ln.Operand)
		}
		return uint8(value), nil
	default:
		addr, ok := table.Lookup(ln.Operand)
		if !ok {
			return 0, fmt.Errorf("%w '%s' on line %d", ErrUnknownLabel, ln.Operand, ln.LineNo)
		}
		return uint8(addr), nil
	}
}
