package disassembler

import (
	"fmt"

	"github.com/Urethramancer/lc3/cpu"
)

// Record is one line of disassembly: a decoded instruction, a .FILL data
// word, or a framing directive.
type Record struct {
	// Addr is the word index the record came from, or -1 for the .ORIG
	// and .END framing directives.
	Addr     int
	Mnemonic string
	Operands []string
	// Target is a word address the instruction refers to symbolically,
	// valid only when HasTarget is set. Zero and negative addresses are
	// legitimate targets, hence the explicit flag.
	Target    int
	HasTarget bool
}

// DecodeError reports a word that cannot be decoded. It is fatal to the
// whole run: one bad word means the stream's framing can't be trusted.
type DecodeError struct {
	Addr   int
	Word   uint16
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %016b at address %d", e.Reason, e.Word, e.Addr)
}

// Decode classifies the word at addr by its opcode field and returns its
// assembly record.
func Decode(addr int, w uint16) (Record, error) {
	switch cpu.Opcode(Field(w, 0, 4)) {
	case cpu.OpADD:
		return arithmetic(addr, w, "ADD"), nil
	case cpu.OpAND:
		return arithmetic(addr, w, "AND"), nil
	case cpu.OpNOT:
		// Bits [10:16) are conventionally all ones; not checked.
		return Record{
			Addr:     addr,
			Mnemonic: "NOT",
			Operands: []string{Register(Field(w, 4, 7)), Register(Field(w, 7, 10))},
		}, nil
	case cpu.OpBR:
		return Record{
			Addr:      addr,
			Mnemonic:  "BR" + CondFlags(Field(w, 4, 7)),
			Target:    PCRelative(addr, Field(w, 7, 16), 9),
			HasTarget: true,
		}, nil
	case cpu.OpJMP:
		base := Field(w, 7, 10)
		if base == 7 {
			return Record{Addr: addr, Mnemonic: "RET"}, nil
		}
		return Record{Addr: addr, Mnemonic: "JMP", Operands: []string{Register(base)}}, nil
	case cpu.OpJSR:
		if Field(w, 4, 5) == 1 {
			return Record{
				Addr:      addr,
				Mnemonic:  "JSR",
				Target:    PCRelative(addr, Field(w, 5, 16), 11),
				HasTarget: true,
			}, nil
		}
		return Record{Addr: addr, Mnemonic: "JSRR", Operands: []string{Register(Field(w, 7, 10))}}, nil
	case cpu.OpRTI:
		return Record{Addr: addr, Mnemonic: "RTI"}, nil
	case cpu.OpLEA:
		return pcRelativeLoad(addr, w, "LEA")
	case cpu.OpLD:
		return pcRelativeLoad(addr, w, "LD")
	case cpu.OpLDI:
		return pcRelativeLoad(addr, w, "LDI")
	case cpu.OpST:
		return pcRelativeLoad(addr, w, "ST")
	case cpu.OpSTI:
		return pcRelativeLoad(addr, w, "STI")
	case cpu.OpLDR:
		return based(addr, w, "LDR"), nil
	case cpu.OpSTR:
		return based(addr, w, "STR"), nil
	case cpu.OpTRAP:
		vec := Field(w, 8, 16)
		if mn := cpu.TrapName(vec); mn != "" {
			return Record{Addr: addr, Mnemonic: mn}, nil
		}
		return Record{Addr: addr, Mnemonic: "TRAP", Operands: []string{Hex(vec)}}, nil
	}
	return Record{}, &DecodeError{Addr: addr, Word: w, Reason: "invalid opcode"}
}

// arithmetic handles the shared ADD/AND layout: two registers plus either
// a third register or, when bit 10 is set, a 5-bit signed immediate.
func arithmetic(addr int, w uint16, mn string) Record {
	ops := []string{Register(Field(w, 4, 7)), Register(Field(w, 7, 10))}
	if Field(w, 10, 11) == 1 {
		ops = append(ops, Immediate(Field(w, 11, 16), 5))
	} else {
		ops = append(ops, Register(Field(w, 13, 16)))
	}
	return Record{Addr: addr, Mnemonic: mn, Operands: ops}
}

// pcRelativeLoad handles the LD/LDI/LEA/ST/STI layout: one register plus
// a 9-bit pc-relative target.
func pcRelativeLoad(addr int, w uint16, mn string) (Record, error) {
	return Record{
		Addr:      addr,
		Mnemonic:  mn,
		Operands:  []string{Register(Field(w, 4, 7))},
		Target:    PCRelative(addr, Field(w, 7, 16), 9),
		HasTarget: true,
	}, nil
}

// based handles LDR/STR. The 6-bit offset gets the same signed+1
// arithmetic as pc-relative fields but without the address term, and
// stays a plain literal rather than resolving to a label.
func based(addr int, w uint16, mn string) Record {
	off := Signed(Field(w, 10, 16), 6) + 1
	return Record{
		Addr:     addr,
		Mnemonic: mn,
		Operands: []string{
			Register(Field(w, 4, 7)),
			Register(Field(w, 7, 10)),
			fmt.Sprintf("#%d", off),
		},
	}
}
