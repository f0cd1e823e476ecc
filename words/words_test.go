package words_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Urethramancer/lc3/words"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"x3000", 0x3000},
		{"xffff", 0xffff},
		{"x0", 0},
		{"x25", 0x25},
		{"0001001010100001", 0x12a1},
		{"0000000000000000", 0},
		{"1111111111111111", 0xffff},
	}
	for _, tt := range tests {
		got, err := words.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsMalformedLiterals(t *testing.T) {
	bad := []string{
		"",
		"x",
		"xg000",
		"x10000",            // over 16 bits
		"101010101010101",   // 15 digits
		"10101010101010101", // 17 digits
		"0101010101010102",  // not binary
		"X3000",             // hex prefix is lowercase
	}
	for _, in := range bad {
		if v, err := words.Parse(in); err == nil {
			t.Errorf("Parse(%q) = %#x, want error", in, v)
		}
	}
}

func TestRead(t *testing.T) {
	in := "x3000\n0001001010100001\r\nxf025\n"
	got, err := words.Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0x3000, 0x12a1, 0xf025}
	if len(got) != len(want) {
		t.Fatalf("read %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestReadReportsLine(t *testing.T) {
	_, err := words.Read(strings.NewReader("x1\nbogus\nx2\n"))
	if err == nil {
		t.Fatal("want error for malformed line")
	}
	var ferr *words.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("want *FormatError, got %T", err)
	}
	if ferr.Line != 2 || ferr.Text != "bogus" {
		t.Errorf("error lost context: %+v", ferr)
	}
}
