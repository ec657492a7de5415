package intelhex

import (
	"io"
)

// Assembler consumes a sequence of records and builds the binary image
// they describe. It holds the address resolution state between records:
// the base address established by the most recent extended segment
// address record, the end of file flag, and the informational start
// segment bytes. One Assembler serves one run; it is not safe for
// concurrent use and is not meant to be reused after a failure.
type Assembler struct {
	baseAddress uint32 // high-order address bits from the last segment record
	eofSeen     bool   // end of file record observed
	startCS     byte   // first byte of the start segment record data
	startIP     byte   // second byte of the start segment record data
	startFlag   bool   // start segment record observed
	image       []byte // growable image buffer, zero-filled on extension
}

func NewAssembler() *Assembler {
	a := new(Assembler)
	a.Clear()
	return a
}

// Clear resets the assembler to its initial state.
func (a *Assembler) Clear() {
	a.baseAddress = 0
	a.eofSeen = false
	a.startCS = 0
	a.startIP = 0
	a.startFlag = false
	a.image = []byte{}
}

// Put verifies one record and applies it to the assembler state. Records
// must arrive in source order; the first error is final and leaves the
// assembler unusable for the rest of the run.
func (a *Assembler) Put(r *Record) error {
	if a.eofSeen {
		return &UnexpectedRecordAfterEOFError{Line: r.Line}
	}
	if err := r.Verify(); err != nil {
		return err
	}
	switch r.Type {
	case DataRecord:
		a.write(a.baseAddress+uint32(r.Address), r.Data)
	case EOFRecord:
		a.eofSeen = true
	case ExtendedSegmentAddressRecord:
		a.baseAddress = r.DataValue() << 4
	case StartSegmentAddressRecord:
		if len(r.Data) >= 2 {
			a.startCS = r.Data[0]
			a.startIP = r.Data[1]
			a.startFlag = true
		}
	default:
		return &UnhandledRecordTypeError{Line: r.Line, Type: r.Type}
	}
	return nil
}

// write copies data into the image at the given absolute address,
// zero-filling any gap between the current end of the image and the
// write position. Addresses beyond the uint32 range are not defended
// against; base address plus record address is taken as-is.
func (a *Assembler) write(adr uint32, data []byte) {
	if end := int(adr) + len(data); end > len(a.image) {
		a.image = append(a.image, make([]byte, end-len(a.image))...)
	}
	copy(a.image[adr:], data)
}

// Run feeds every record from the input stream through the assembler.
// Lines are scanned, parsed, verified and dispatched one at a time with
// no lookahead; the sequence must end with an end of file record.
func (a *Assembler) Run(r io.Reader) error {
	s := NewScanner(r)
	for s.Scan() {
		rec, err := ParseRecord(s.Line(), s.Text())
		if err != nil {
			return err
		}
		if err := a.Put(rec); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !a.eofSeen {
		return &MissingEOFError{}
	}
	return nil
}

// Image returns the finalized byte sequence. It fails until an end of
// file record has been seen, so a caller driving Put directly gets the
// same termination guarantee as Run.
func (a *Assembler) Image() ([]byte, error) {
	if !a.eofSeen {
		return nil, &MissingEOFError{}
	}
	return a.image, nil
}

// WriteTo dumps the finalized image to the sink, first byte to last.
// Nothing is written unless assembly has fully succeeded.
func (a *Assembler) WriteTo(w io.Writer) (int64, error) {
	image, err := a.Image()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(image)
	return int64(n), err
}

// StartSegment returns the CS and IP bytes captured from a start segment
// address record. ok is false if no such record has been seen. The two
// bytes are informational only and play no part in address resolution.
func (a *Assembler) StartSegment() (cs, ip byte, ok bool) {
	if a.startFlag {
		return a.startCS, a.startIP, true
	}
	return 0, 0, false
}
