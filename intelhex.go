// Package intelhex decodes the Intel HEX record format into a binary
// image. Records are parsed and checksum-verified one line at a time and
// folded through an Assembler; the image is only available once a
// well-formed end of file record has been seen.
package intelhex

import (
	"fmt"
	"io"
)

// Assemble reads hex records from r and returns the assembled binary
// image. The first malformed line, checksum mismatch or out-of-protocol
// record aborts with no partial result.
func Assemble(r io.Reader) ([]byte, error) {
	a := NewAssembler()
	if err := a.Run(r); err != nil {
		return nil, err
	}
	return a.Image()
}

// Explain writes the diagnostic rendering of every record in r to w, one
// line per record in input order, without assembling anything. Records
// with bad checksums are rendered with an INVALID CHECKSUM marker rather
// than aborting; only a malformed line is an error.
func Explain(r io.Reader, w io.Writer) error {
	s := NewScanner(r)
	for s.Scan() {
		rec, err := ParseRecord(s.Line(), s.Text())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, rec); err != nil {
			return err
		}
	}
	return s.Err()
}
