package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/system123/intelhex"
)

func main() {
	var inFile string
	var outFile string
	var explain bool

	flag.StringVar(&inFile, "infile", "-", "hex file to read")
	flag.StringVar(&outFile, "o", "-", "binary file to write")
	flag.BoolVar(&explain, "p", false, "print a description of each record instead of assembling")
	flag.Parse()
	if len(flag.Args()) == 1 {
		inFile = flag.Arg(0)
	}

	f := os.Stdin
	if inFile != "-" {
		var err error
		f, err = os.Open(inFile)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
	}

	if explain {
		if err := intelhex.Explain(f, os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	image, err := intelhex.Assemble(f)
	if err != nil {
		fatal(err)
	}

	w := os.Stdout
	if outFile != "-" {
		w, err = os.Create(outFile)
		if err != nil {
			fatal(err)
		}
		defer w.Close()
	}
	if _, err := w.Write(image); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
