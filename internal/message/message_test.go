package message

import (
	"bytes"
	"errors"
	"testing"

	askdigerrors "github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/protocol"
)

// S1 — Header round-trip.
func TestScenarioS1HeaderRoundTrip(t *testing.T) {
	buf, err := EncodeQuery(0xDEAD, "x", protocol.TypeA, protocol.ClassIN, true)
	if err != nil {
		t.Fatalf("EncodeQuery: %v", err)
	}
	want := []byte{0xDE, 0xAD, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf[:12], want) {
		t.Errorf("header bytes = % X, want % X", buf[:12], want)
	}
	h, err := DecodeHeader(buf)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if h.ID != 0xDEAD || h.Opcode() != protocol.OpcodeQuery || !h.RecursionDesired() || h.QDCount != 1 {
		t.Errorf("decoded header = %+v", h)
	}
}

// S2 — Uncompressed name decode.
func TestScenarioS2UncompressedName(t *testing.T) {
	buf := []byte{0x06, 0x67, 0x6F, 0x6F, 0x67, 0x6C, 0x65, 0x03, 0x63, 0x6F, 0x6D, 0x00}
	name, cursor, err := DecodeName(buf, 0)
	if err != nil {
		t.Fatalf("DecodeName: %v", err)
	}
	if name != "google.com" {
		t.Errorf("name = %q, want google.com", name)
	}
	if cursor != 12 {
		t.Errorf("cursor = %d, want 12", cursor)
	}
}

// S3 — Compressed name decode.
func TestScenarioS3CompressedName(t *testing.T) {
	buf := []byte{
		0x06, 0x67, 0x6F, 0x6F, 0x67, 0x6C, 0x65, 0x03, 0x63, 0x6F, 0x6D, 0x00,
		0x03, 0x61, 0x70, 0x69, 0xC0, 0x00,
	}
	name, cursor, err := DecodeName(buf, 12)
	if err != nil {
		t.Fatalf("DecodeName: %v", err)
	}
	if name != "api.google.com" {
		t.Errorf("name = %q, want api.google.com", name)
	}
	if cursor != 18 {
		t.Errorf("cursor = %d, want 18", cursor)
	}
}

// S4 — A record.
func TestScenarioS4ARecord(t *testing.T) {
	buf := []byte{
		0xDE, 0xAD, 0x81, 0x80, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
		0x06, 0x67, 0x6F, 0x6F, 0x67, 0x6C, 0x65, 0x03, 0x63, 0x6F, 0x6D, 0x00, 0x00, 0x01, 0x00, 0x01,
		0xC0, 0x0C, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x3C, 0x00, 0x04, 0x08, 0x08, 0x08, 0x08,
	}
	msg, err := DecodeMessage(buf)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if len(msg.Questions) != 1 || msg.Questions[0].Name != "google.com" {
		t.Fatalf("questions = %+v", msg.Questions)
	}
	if len(msg.Answers) != 1 {
		t.Fatalf("answers = %+v", msg.Answers)
	}
	answer := msg.Answers[0]
	if answer.TTL != 60 {
		t.Errorf("ttl = %d, want 60", answer.TTL)
	}
	a, ok := answer.RData.(ARData)
	if !ok {
		t.Fatalf("rdata type = %T, want ARData", answer.RData)
	}
	if a.Addr != [4]byte{8, 8, 8, 8} {
		t.Errorf("address = %v, want 8.8.8.8", a.Addr)
	}
}

// S5 — Pointer loop / self-reference rejected.
func TestScenarioS5SelfReferencingPointerRejected(t *testing.T) {
	buf := make([]byte, 14)
	buf[12] = 0xC0
	buf[13] = 0x0C // points to itself at offset 12
	_, _, err := DecodeName(buf, 12)
	var wireErr *askdigerrors.WireError
	if !errors.As(err, &wireErr) || wireErr.Kind != askdigerrors.KindInvalidPointer {
		t.Errorf("expected KindInvalidPointer, got %v", err)
	}
}

// S6 — Name encode length limit.
func TestScenarioS6NameEncodeLengthLimit(t *testing.T) {
	label63 := bytesOf('a', 63)
	// Four 63-byte labels plus separators = 4*63 + 3 = 255 chars as a
	// dotted string; wire-encoded that is 4*64 + 1 = 257 > 255, so use
	// three 63-byte labels (wire 3*64 = 192) plus a fourth 61-byte label
	// (wire 62) and the terminating zero to land the wire encoding exactly
	// at 255 bytes.
	name := label63 + "." + label63 + "." + label63 + "." + bytesOf('a', 61)
	encoded, err := EncodeName(name)
	if err != nil {
		t.Fatalf("EncodeName at the boundary: %v", err)
	}
	if len(encoded) != 255 {
		t.Fatalf("encoded length = %d, want 255", len(encoded))
	}

	tooLong := name + "x"
	if _, err := EncodeName(tooLong); err == nil {
		t.Fatal("expected NameTooLong error")
	} else {
		var wireErr *askdigerrors.WireError
		if !errors.As(err, &wireErr) || wireErr.Kind != askdigerrors.KindNameTooLong {
			t.Errorf("expected KindNameTooLong, got %v", err)
		}
	}
}

func bytesOf(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}

func TestDecodeMessageRdlengthMismatchOnUnknownType(t *testing.T) {
	// Header: qd=0, an=1.
	buf := []byte{
		0, 1, 0x80, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
	}
	// Name "a" + type 9999-ish unknown (but still within type space) + class IN + ttl + rdlength=4 + 3 bytes only.
	rr := []byte{
		1, 'a', 0, // name
		0x27, 0x11, // type 10001 (unknown)
		0x00, 0x01, // class IN
		0, 0, 0, 60, // ttl
		0, 4, // rdlength = 4
		1, 2, 3, // only 3 bytes present: truncated
	}
	full := append(append([]byte{}, buf...), rr...)
	_, err := DecodeMessage(full)
	if err == nil {
		t.Fatal("expected a truncation error")
	}
}
