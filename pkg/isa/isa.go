// Package isa defines the TRACS instruction table: each mnemonic's
// opcode byte and whether its operand packs into the instruction word.
package isa

import "sort"

const (
	OpWB   uint8 = 0x30
	OpWM   uint8 = 0x08
	OpRM   uint8 = 0x10
	OpWACC uint8 = 0x48
	OpWIB  uint8 = 0x38
	OpWIO  uint8 = 0x28
	OpRACC uint8 = 0x58
	OpADD  uint8 = 0xF0
	OpSUB  uint8 = 0xE8
	OpMUL  uint8 = 0xD8
	OpAND  uint8 = 0xD0
	OpOR   uint8 = 0xC8
	OpNOT  uint8 = 0xC0
	OpXOR  uint8 = 0xB8
	OpSHL  uint8 = 0xB0
	OpSHR  uint8 = 0xA8
	OpBR   uint8 = 0x18
	OpBRE  uint8 = 0xA0
	OpBRNE uint8 = 0x98
	OpBRGT uint8 = 0x90
	OpBRLT uint8 = 0x88
	OpEOP  uint8 = 0xF8
	OpSWAP uint8 = 0x70
)

// Spec describes one instruction. PacksOperand marks instructions whose
// operand value is combined with the opcode into a single 16-bit word
// before the word is split into the two output bytes.
type Spec struct {
	Mnemonic     string
	Opcode       uint8
	PacksOperand bool
}

var specs = map[string]Spec{
	"WB":   {Mnemonic: "WB", Opcode: OpWB},
	"WM":   {Mnemonic: "WM", Opcode: OpWM, PacksOperand: true},
	"RM":   {Mnemonic: "RM", Opcode: OpRM, PacksOperand: true},
	"WACC": {Mnemonic: "WACC", Opcode: OpWACC},
	"WIB":  {Mnemonic: "WIB", Opcode: OpWIB},
	"WIO":  {Mnemonic: "WIO", Opcode: OpWIO, PacksOperand: true},
	"RACC": {Mnemonic: "RACC", Opcode: OpRACC},
	"ADD":  {Mnemonic: "ADD", Opcode: OpADD},
	"SUB":  {Mnemonic: "SUB", Opcode: OpSUB},
	"MUL":  {Mnemonic: "MUL", Opcode: OpMUL},
	"AND":  {Mnemonic: "AND", Opcode: OpAND},
	"OR":   {Mnemonic: "OR", Opcode: OpOR},
	"NOT":  {Mnemonic: "NOT", Opcode: OpNOT},
	"XOR":  {Mnemonic: "XOR", Opcode: OpXOR},
	"SHL":  {Mnemonic: "SHL", Opcode: OpSHL},
	"SHR":  {Mnemonic: "SHR", Opcode: OpSHR},
	"BR":   {Mnemonic: "BR", Opcode: OpBR, PacksOperand: true},
	"BRE":  {Mnemonic: "BRE", Opcode: OpBRE, PacksOperand: true},
	"BRNE": {Mnemonic: "BRNE", Opcode: OpBRNE, PacksOperand: true},
	"BRGT": {Mnemonic: "BRGT", Opcode: OpBRGT, PacksOperand: true},
	"BRLT": {Mnemonic: "BRLT", Opcode: OpBRLT, PacksOperand: true},
	"EOP":  {Mnemonic: "EOP", Opcode: OpEOP},
	"SWAP": {Mnemonic: "SWAP", Opcode: OpSWAP},
}

var branchOps = map[string]bool{
	"BR":   true,
	"BRE":  true,
	"BRNE": true,
	"BRGT": true,
	"BRLT": true,
}

// Lookup returns the spec for a mnemonic. Matching is case-sensitive.
func Lookup(mnemonic string) (Spec, bool) {
	s, ok := specs[mnemonic]
	return s, ok
}

// IsMnemonic reports whether s is a known instruction name.
func IsMnemonic(s string) bool {
	_, ok := specs[s]
	return ok
}

// IsBranch reports whether the mnemonic is one of the five branch
// instructions, the only ones that may take a label operand.
func IsBranch(mnemonic string) bool {
	return branchOps[mnemonic]
}

// Pack combines an opcode and operand into one 16-bit instruction word.
func Pack(opcode, operand uint8) uint16 {
	return uint16(opcode)<<8 | uint16(operand)
}

// Split breaks an instruction word into its high and low bytes.
func Split(word uint16) (hi, lo uint8) {
	return uint8(word >> 8), uint8(word & 0xFF)
}

// Mnemonics returns every instruction name in sorted order.
func Mnemonics() []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
