package intelhex

import (
	"fmt"
)

// Every error in this package is fatal to the run it occurs in: nothing
// is caught or retried internally, the first error aborts assembly and
// no partial image reaches the caller.

// MalformedLineError reports a line that does not match the record
// grammar.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("syntax error: not a hex record %q at line %d", e.Text, e.Line)
}

// ChecksumMismatchError reports a record whose stored checksum does not
// match the computed one. Record holds the diagnostic rendering of the
// offending record.
type ChecksumMismatchError struct {
	Line     int
	Expected byte
	Actual   byte
	Record   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum error: expected %02X, got %02X at line %d (%s)",
		e.Expected, e.Actual, e.Line, e.Record)
}

// UnexpectedRecordAfterEOFError reports a record appearing after the end
// of file record has already been seen.
type UnexpectedRecordAfterEOFError struct {
	Line int
}

func (e *UnexpectedRecordAfterEOFError) Error() string {
	return fmt.Sprintf("record error: record after end of file at line %d", e.Line)
}

// UnhandledRecordTypeError reports a record whose type code the
// assembler does not handle. This covers unknown codes as well as the
// recognized linear address types.
type UnhandledRecordTypeError struct {
	Line int
	Type RecordType
}

func (e *UnhandledRecordTypeError) Error() string {
	return fmt.Sprintf("record error: unhandled record type %s at line %d", e.Type, e.Line)
}

// MissingEOFError reports a record sequence that ended without an end of
// file record.
type MissingEOFError struct{}

func (e *MissingEOFError) Error() string {
	return "record error: no end of file record"
}
