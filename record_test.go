package intelhex

import (
	"testing"
)

func mustParse(t *testing.T, num int, text string) *Record {
	t.Helper()
	r, err := ParseRecord(num, text)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return r
}

func TestParseRecord(t *testing.T) {
	r := mustParse(t, 1, ":0300300002337A1E")
	if r.Line != 1 {
		t.Errorf("wrong line number")
	}
	if r.Size != 3 {
		t.Errorf("wrong size")
	}
	if r.Address != 0x0030 {
		t.Errorf("wrong address")
	}
	if r.Type != DataRecord {
		t.Errorf("wrong type")
	}
	if len(r.Data) != 3 || r.Data[0] != 0x02 || r.Data[1] != 0x33 || r.Data[2] != 0x7A {
		t.Errorf("wrong data")
	}
	if r.Checksum != 0x1E {
		t.Errorf("wrong checksum")
	}
}

func TestParseLowercaseAndTrailingWhitespace(t *testing.T) {
	r := mustParse(t, 1, ":0300300002337a1e \t\r")
	if err := r.Verify(); err != nil {
		t.Errorf("lowercase record did not verify: %v", err)
	}
	if r.Data[2] != 0x7A {
		t.Errorf("wrong data")
	}
}

func TestParseMalformed(t *testing.T) {
	lines := []string{
		"0300300002337A1E",   // no leading colon
		":0300300002337A1",   // odd number of hex digits
		":qw00300002337A1E",  // not hex
		":000001",            // shorter than the fixed fields
		": 0300300002337A1E", // embedded whitespace
		"",
	}
	for _, line := range lines {
		_, err := ParseRecord(4, line)
		if err == nil {
			t.Errorf("no error for %q", line)
			continue
		}
		mErr, ok := err.(*MalformedLineError)
		if !ok {
			t.Errorf("wrong error type for %q: %v", line, err)
			continue
		}
		if mErr.Line != 4 || mErr.Text != line {
			t.Errorf("wrong error fields for %q: %v", line, err)
		}
	}
}

func TestSizeFieldNotCrossChecked(t *testing.T) {
	// Declared size 2, three data bytes. The checksum is consistent
	// with the real bytes, so the record parses and verifies; the size
	// field on its own is never checked.
	r := mustParse(t, 1, ":0200300002337A1F")
	if r.Size != 2 {
		t.Errorf("wrong size")
	}
	if len(r.Data) != 3 {
		t.Errorf("wrong data length")
	}
	if err := r.Verify(); err != nil {
		t.Errorf("record did not verify: %v", err)
	}
}

func TestChecksumLaw(t *testing.T) {
	lines := []string{
		":0300300002337A1E",
		":00000001FF",
		":020000021000EC",
		":020000031234B5",
		":0400000001020304F2",
	}
	for _, line := range lines {
		r := mustParse(t, 1, line)
		sum := r.Size
		sum += byte(r.Address >> 8)
		sum += byte(r.Address)
		sum += byte(r.Type)
		for _, b := range r.Data {
			sum += b
		}
		sum += r.Checksum
		if sum != 0 {
			t.Errorf("checksum law broken for %q: sum = %02X", line, sum)
		}
		if err := r.Verify(); err != nil {
			t.Errorf("record did not verify: %v", err)
		}
	}
}

func TestVerifyMismatch(t *testing.T) {
	r := mustParse(t, 1, ":0300300002337A1F")
	err := r.Verify()
	if err == nil {
		t.Fatalf("no checksum error")
	}
	cErr, ok := err.(*ChecksumMismatchError)
	if !ok {
		t.Fatalf("wrong error type: %v", err)
	}
	if cErr.Line != 1 {
		t.Errorf("wrong line number")
	}
	if cErr.Expected != 0x1E {
		t.Errorf("wrong expected checksum: %02X", cErr.Expected)
	}
	if cErr.Actual != 0x1F {
		t.Errorf("wrong actual checksum: %02X", cErr.Actual)
	}
	if cErr.Record == "" {
		t.Errorf("no record rendering")
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		":0300300002337A1E",
		":00000001FF",
		":020000021000EC",
		":0400000500010000F6",
		":01000100AA54",
	}
	for _, line := range lines {
		r := mustParse(t, 1, line)
		if enc := r.Encode(); enc != line {
			t.Errorf("round trip failed: %q != %q", enc, line)
		}
	}
	// lowercase input normalizes to uppercase
	r := mustParse(t, 1, ":0300300002337a1e")
	if enc := r.Encode(); enc != ":0300300002337A1E" {
		t.Errorf("no uppercase normalization: %q", enc)
	}
}

func TestDataValue(t *testing.T) {
	r := mustParse(t, 1, ":02000002100CE0")
	if r.DataValue() != 0x100C {
		t.Errorf("wrong data value: %X", r.DataValue())
	}
	r = mustParse(t, 1, ":00000001FF")
	if r.DataValue() != 0 {
		t.Errorf("wrong empty data value")
	}
}

func TestString(t *testing.T) {
	r := mustParse(t, 1, ":0300300002337A1E")
	if s := r.String(); s != "1: DATA: 3 bytes from 0x0030: 02 33 7A" {
		t.Errorf("wrong rendering: %q", s)
	}
	r = mustParse(t, 1, ":0300300002337A1F")
	if s := r.String(); s != "1: DATA: 3 bytes from 0x0030: 02 33 7A (INVALID CHECKSUM)" {
		t.Errorf("wrong invalid rendering: %q", s)
	}
	r = mustParse(t, 2, ":00000001FF")
	if s := r.String(); s != "2: EOF: 0 bytes from 0x0000: " {
		t.Errorf("wrong eof rendering: %q", s)
	}
}

func TestRecordTypeNames(t *testing.T) {
	names := map[RecordType]string{
		DataRecord:                   "DATA",
		EOFRecord:                    "EOF",
		ExtendedSegmentAddressRecord: "EXTENDED_SEGMENT_ADDRESS",
		StartSegmentAddressRecord:    "START_SEGMENT_ADDRESS",
		ExtendedLinearAddressRecord:  "EXTENDED_LINEAR_ADDRESS",
		StartLinearAddressRecord:     "START_LINEAR_ADDRESS",
		RecordType(0x06):             "UNKNOWN(0x06)",
	}
	for typ, name := range names {
		if typ.String() != name {
			t.Errorf("wrong name for type %d: %q", byte(typ), typ.String())
		}
	}
}
