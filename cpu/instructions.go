// Package cpu holds the LC-3 instruction set inventory shared by the
// other packages: opcode values, trap vectors and the conventional
// load origin.
package cpu

// Opcode is the 4-bit operation selector in the top bits of an
// instruction word.
type Opcode uint16

// Opcodes for the sixteen possible bit patterns. OpReserved is the one
// pattern the architecture leaves undefined.
const (
	OpBR       Opcode = 0b0000 // BR, condition suffix from bits [4:7)
	OpADD      Opcode = 0b0001 // ADD
	OpLD       Opcode = 0b0010 // LD
	OpST       Opcode = 0b0011 // ST
	OpJSR      Opcode = 0b0100 // JSR, or JSRR when bit 4 is clear
	OpAND      Opcode = 0b0101 // AND
	OpLDR      Opcode = 0b0110 // LDR
	OpSTR      Opcode = 0b0111 // STR
	OpRTI      Opcode = 0b1000 // RTI
	OpNOT      Opcode = 0b1001 // NOT
	OpLDI      Opcode = 0b1010 // LDI
	OpSTI      Opcode = 0b1011 // STI
	OpJMP      Opcode = 0b1100 // JMP, or RET when the base register is R7
	OpReserved Opcode = 0b1101 // unused
	OpLEA      Opcode = 0b1110 // LEA
	OpTRAP     Opcode = 0b1111 // TRAP
)

// Trap vectors with conventional shorthand mnemonics.
const (
	TrapGETC  = 0x20 // read one character
	TrapOUT   = 0x21 // write one character
	TrapPUTS  = 0x22 // write a word string
	TrapIN    = 0x23 // prompt and read one character
	TrapPUTSP = 0x24 // write a packed byte string
	TrapHALT  = 0x25 // stop the machine
)

// Origin is the conventional load address of user programs.
const Origin uint16 = 0x3000

// TrapName returns the shorthand mnemonic for a trap vector, or an empty
// string when the vector has no shorthand.
func TrapName(vector uint16) string {
	switch vector {
	case TrapGETC:
		return "GETC"
	case TrapOUT:
		return "OUT"
	case TrapPUTS:
		return "PUTS"
	case TrapIN:
		return "IN"
	case TrapPUTSP:
		return "PUTSP"
	case TrapHALT:
		return "HALT"
	}
	return ""
}
