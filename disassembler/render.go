package disassembler

import (
	"fmt"
	"io"
	"strings"
)

// Column widths for the label and mnemonic fields.
const (
	labelWidth    = 8
	mnemonicWidth = 6
)

// Render writes one line per record. The first column carries the label
// of records whose own address is a branch target, the second the
// mnemonic; operands follow comma-separated, with the record's target
// label appended last. Lines never carry trailing blanks.
func Render(w io.Writer, recs []Record, labels map[int]string) error {
	for _, r := range recs {
		var label string
		if r.Addr >= 0 {
			label = labels[r.Addr]
		}
		params := r.Operands
		if r.HasTarget {
			params = append(params, labels[r.Target])
		}

		line := fmt.Sprintf("%-*s%-*s", labelWidth, label, mnemonicWidth, r.Mnemonic)
		if len(params) > 0 {
			line += "  " + strings.Join(params, ", ")
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
