package disassembler

import "fmt"

// Bit positions follow the instruction set tables: position 0 is the most
// significant bit of the 16-bit word and fields cover [from:to).

// Field extracts bits [from:to) of w as an unsigned value.
func Field(w uint16, from, to int) uint16 {
	return (w >> (16 - to)) & (1<<(to-from) - 1)
}

// Signed interprets v as a width-bit two's-complement value.
func Signed(v uint16, width int) int {
	if v&(1<<(width-1)) != 0 {
		return int(v) - 1<<width
	}
	return int(v)
}

// Register names a 3-bit register field.
func Register(v uint16) string {
	return fmt.Sprintf("R%d", v)
}

// Immediate renders a width-bit signed field as an immediate literal.
func Immediate(v uint16, width int) string {
	return fmt.Sprintf("#%d", Signed(v, width))
}

// CondFlags renders a 3-bit condition field as the subset of "nzp" whose
// bits are set, in that order. All-clear yields an empty string.
func CondFlags(v uint16) string {
	var s string
	if v&0b100 != 0 {
		s += "n"
	}
	if v&0b010 != 0 {
		s += "z"
	}
	if v&0b001 != 0 {
		s += "p"
	}
	return s
}

// Hex renders v as an unpadded lowercase hex literal, e.g. x25.
func Hex(v uint16) string {
	return fmt.Sprintf("x%x", v)
}

// PCRelative resolves a width-bit offset field against the address of the
// instruction holding it. The +1 accounts for the program counter having
// advanced past the instruction word. The result may lie outside the
// program; callers decide what an out-of-range target means.
func PCRelative(addr int, off uint16, width int) int {
	return addr + Signed(off, width) + 1
}
