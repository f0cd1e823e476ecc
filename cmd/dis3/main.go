package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Urethramancer/lc3/disassembler"
	"github.com/Urethramancer/lc3/words"
	flag "github.com/spf13/pflag"
)

func main() {
	fill := flag.BoolP("fill", "f", false, "emit words after HALT as .FILL data")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-f] [inputfile [outputfile]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 2 {
		flag.Usage()
		os.Exit(1)
	}

	in := os.Stdin
	if len(args) >= 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	program, err := words.Read(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Input error: %v\n", err)
		os.Exit(1)
	}

	recs, labels, err := disassembler.Disassemble(program, *fill)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	var out strings.Builder
	if err := disassembler.Render(&out, recs, labels); err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 2 {
		if err := os.WriteFile(args[1], []byte(out.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Disassembly written to %s\n", args[1])
		return
	}
	fmt.Print(out.String())
}
