package disassembler_test

import (
	"strings"
	"testing"

	"github.com/Urethramancer/lc3/disassembler"
)

func render(t *testing.T, program []uint16, autoFill bool) string {
	t.Helper()
	recs, labels, err := disassembler.Disassemble(program, autoFill)
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := disassembler.Render(&out, recs, labels); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestRenderProgram(t *testing.T) {
	program := []uint16{
		0b1110001000000010, // LEA R1, <address 3>
		0b0101010010100000, // AND R2, R2, #0
		0b1111000000100101, // HALT
		0b0011000000111001, // trailing constant x3039
	}
	want := strings.Join([]string{
		"        .ORIG   x3000",
		"        LEA     R1, LABEL0",
		"        AND     R2, R2, #0",
		"        HALT",
		"LABEL0  .FILL   x3039",
		"        .END",
		"",
	}, "\n")
	if got := render(t, program, true); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

// A target before the program still gets a name; no line carries the
// label, since no record has that address.
func TestRenderTargetOutsideProgram(t *testing.T) {
	program := []uint16{
		0b0000111111111101, // BRnzp -3 from address 0 -> address -2
	}
	want := strings.Join([]string{
		"        .ORIG   x3000",
		"        BRnzp   LABEL0",
		"        .END",
		"",
	}, "\n")
	if got := render(t, program, false); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNoTrailingBlanks(t *testing.T) {
	program := []uint16{
		0b1100000111000000, // RET
		0b1000000000000000, // RTI
	}
	for _, line := range strings.Split(render(t, program, false), "\n") {
		if line != strings.TrimRight(line, " ") {
			t.Errorf("trailing blanks on %q", line)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	program := []uint16{
		0b0000010000000010, // BRz +2 -> address 3
		0b0100100000000011, // JSR +3 -> address 5
		0b0010000000000011, // LD R0, <address 6>
		0b0001000000100001, // ADD R0, R0, #1
		0b1100000111000000, // RET
		0b1111000000100101, // HALT
		0b0000000000000101, // data
	}
	first := render(t, program, true)
	for i := 0; i < 10; i++ {
		if got := render(t, program, true); got != first {
			t.Fatalf("run %d differed:\n%s\nvs:\n%s", i, got, first)
		}
	}
}
