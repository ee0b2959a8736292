package asm

import "errors"

var (
	ErrSourceUnreadable    = errors.New("source unreadable")
	ErrOutputUnwritable    = errors.New("output unwritable")
	ErrMissingTerminator   = errors.New("no EOP terminator")
	ErrUnknownLabel        = errors.New("unknown label")
	ErrIllegalLabelOperand = errors.New("label operand not allowed")
	ErrUnknownMnemonic     = errors.New("unknown instruction")
	ErrDuplicateLabel      = errors.New("duplicate label")
	ErrBadOrigin           = errors.New("invalid origin")
	ErrOperandRange        = errors.New("operand out of range")
	ErrProgramTooLarge     = errors.New("program too large")
)
