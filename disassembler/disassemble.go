// Package disassembler converts LC-3 machine words into assembly records
// and renders them as labelled, column-aligned text.
package disassembler

import (
	"fmt"
	"sort"

	"github.com/Urethramancer/lc3/cpu"
)

// Disassemble decodes a whole program. Addresses are word indexes
// counting from 0. With autoFill set, every word after a HALT is emitted
// as a .FILL data directive instead of being decoded; trailing constants
// are rarely valid instructions. The returned label table maps each
// address referenced by some record to its LABELn name.
//
// Decoding is all-or-nothing: the first bad word aborts with no records,
// since one undecodable word means the stream framing can't be trusted.
func Disassemble(program []uint16, autoFill bool) ([]Record, map[int]string, error) {
	recs := make([]Record, 0, len(program)+2)
	recs = append(recs, Record{Addr: -1, Mnemonic: ".ORIG", Operands: []string{Hex(cpu.Origin)}})

	targets := make(map[int]bool)
	pastHalt := false
	for addr, w := range program {
		if pastHalt {
			recs = append(recs, Record{Addr: addr, Mnemonic: ".FILL", Operands: []string{Hex(w)}})
			continue
		}
		r, err := Decode(addr, w)
		if err != nil {
			return nil, nil, err
		}
		if r.HasTarget {
			targets[r.Target] = true
		}
		recs = append(recs, r)
		if r.Mnemonic == "HALT" && autoFill {
			pastHalt = true
		}
	}
	recs = append(recs, Record{Addr: -1, Mnemonic: ".END"})

	return recs, labelTable(targets), nil
}

// labelTable names targets in ascending address order, so identical input
// always yields identical names.
func labelTable(targets map[int]bool) map[int]string {
	addrs := make([]int, 0, len(targets))
	for a := range targets {
		addrs = append(addrs, a)
	}
	sort.Ints(addrs)

	labels := make(map[int]string, len(addrs))
	for i, a := range addrs {
		labels[a] = fmt.Sprintf("LABEL%d", i)
	}
	return labels
}
