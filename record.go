package intelhex

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Constants definitions of record types
const (
	DataRecord                   RecordType = 0 // Record with data bytes
	EOFRecord                    RecordType = 1 // Record with end of file indicator
	ExtendedSegmentAddressRecord RecordType = 2 // Record with extended segment address
	StartSegmentAddressRecord    RecordType = 3 // Record with start segment address (CS/IP bytes)
	ExtendedLinearAddressRecord  RecordType = 4 // Record with extended linear address (recognized, not assembled)
	StartLinearAddressRecord     RecordType = 5 // Record with start linear address (recognized, not assembled)
)

// RecordType is the 8-bit record type code from a hex line.
type RecordType byte

var recordTypeNames = map[RecordType]string{
	DataRecord:                   "DATA",
	EOFRecord:                    "EOF",
	ExtendedSegmentAddressRecord: "EXTENDED_SEGMENT_ADDRESS",
	StartSegmentAddressRecord:    "START_SEGMENT_ADDRESS",
	ExtendedLinearAddressRecord:  "EXTENDED_LINEAR_ADDRESS",
	StartLinearAddressRecord:     "START_LINEAR_ADDRESS",
}

func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", byte(t))
}

// Record is one parsed line of the hex format. Fields are read from the
// line as-is; the declared Size is not cross-checked against the length
// of Data. Verify is the only cross-check.
type Record struct {
	Line     int    // 1-based line number in the source, for diagnostics
	Size     byte   // declared data byte count
	Address  uint16 // line-local address
	Type     RecordType
	Data     []byte
	Checksum byte
}

// ParseRecord parses one text line into a Record. The line must be a
// colon followed by an even run of hex digits covering at least the
// size, address, type and checksum fields. Trailing whitespace is
// allowed, nothing else is.
func ParseRecord(num int, text string) (*Record, error) {
	line := strings.TrimRight(text, " \t\r\n")
	if len(line) == 0 || line[0] != ':' {
		return nil, &MalformedLineError{Line: num, Text: text}
	}
	raw, err := hex.DecodeString(line[1:])
	if err != nil || len(raw) < 5 {
		return nil, &MalformedLineError{Line: num, Text: text}
	}
	return &Record{
		Line:     num,
		Size:     raw[0],
		Address:  uint16(raw[1])<<8 | uint16(raw[2]),
		Type:     RecordType(raw[3]),
		Data:     raw[4 : len(raw)-1],
		Checksum: raw[len(raw)-1],
	}, nil
}

// calcSum returns the checksum the record should carry: the two's
// complement of the 8-bit sum of size, both address bytes, type and
// every data byte.
func (r *Record) calcSum() byte {
	sum := r.Size
	sum += byte(r.Address >> 8)
	sum += byte(r.Address)
	sum += byte(r.Type)
	for _, b := range r.Data {
		sum += b
	}
	return byte(256 - int(sum))
}

// Verify checks the stored checksum against the computed one.
func (r *Record) Verify() error {
	if sum := r.calcSum(); sum != r.Checksum {
		return &ChecksumMismatchError{
			Line:     r.Line,
			Expected: sum,
			Actual:   r.Checksum,
			Record:   r.String(),
		}
	}
	return nil
}

// DataValue interprets the data bytes as a big-endian unsigned integer.
func (r *Record) DataValue() uint32 {
	var v uint32
	for _, b := range r.Data {
		v = v<<8 | uint32(b)
	}
	return v
}

// String renders the record for diagnostics, with an INVALID CHECKSUM
// marker when the stored checksum does not verify.
func (r *Record) String() string {
	invalid := ""
	if r.calcSum() != r.Checksum {
		invalid = " (INVALID CHECKSUM)"
	}
	return fmt.Sprintf("%d: %s: %d bytes from 0x%04X: %s%s",
		r.Line, r.Type, len(r.Data), r.Address, spacedHex(r.Data), invalid)
}

// Encode renders the record back to its canonical textual form:
// colon-prefixed, uppercase hex, no separators.
func (r *Record) Encode() string {
	return fmt.Sprintf(":%02X%04X%02X%s%02X",
		r.Size, r.Address, byte(r.Type), strings.ToUpper(hex.EncodeToString(r.Data)), r.Checksum)
}

func spacedHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
