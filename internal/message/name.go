// Package message implements the DNS name codec per RFC 1035 §3.1 and §4.1.4,
// including backward-pointer decompression.
package message

import (
	"strings"

	"github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/protocol"
)

const (
	maxLabelLength      = protocol.MaxLabelLength
	maxNameLength       = protocol.MaxNameLength
	maxPointerJumps     = 128
	compressionPtrMask  = 0xC0
	reservedLabelMask10 = 0x80
	reservedLabelMask01 = 0x40
)

// DecodeName decodes a DNS name from msg starting at offset, following
// compression pointers per RFC 1035 §4.1.4. It returns the rendered
// dotted name and the cursor position immediately after the name as it
// appears at offset — which, per the pointer-compression rule, is the
// position right after the first pointer dereference (or the trailing
// zero octet), not after any labels a followed pointer chain reads.
func DecodeName(msg []byte, offset int) (name string, newOffset int, err error) {
	if offset < 0 || offset >= len(msg) {
		return "", offset, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode name",
			Offset:    offset,
			Message:   "offset out of bounds",
		}
	}

	var labels []string
	pos := offset
	jumps := 0
	jumped := false

decodeLoop:
	for {
		if pos >= len(msg) {
			return "", offset, &errors.WireError{
				Kind:      errors.KindShortHeader,
				Operation: "decode name",
				Offset:    pos,
				Message:   "unexpected end of message while decoding name",
			}
		}

		length := msg[pos]

		switch length & compressionPtrMask {
		case compressionPtrMask: // top two bits 11: compression pointer
			if pos+1 >= len(msg) {
				return "", offset, &errors.WireError{
					Kind:      errors.KindShortHeader,
					Operation: "decode name",
					Offset:    pos,
					Message:   "truncated compression pointer",
				}
			}
			pointerOffset := int(length&0x3F)<<8 | int(msg[pos+1])
			if pointerOffset >= pos {
				return "", offset, &errors.WireError{
					Kind:      errors.KindInvalidPointer,
					Operation: "decode name",
					Offset:    pos,
					Message:   "compression pointer targets current or later position",
				}
			}
			if !jumped {
				newOffset = pos + 2
				jumped = true
			}
			pos = pointerOffset
			jumps++
			if jumps > maxPointerJumps {
				return "", offset, &errors.WireError{
					Kind:      errors.KindPointerLoop,
					Operation: "decode name",
					Offset:    pos,
					Message:   "pointer dereference chain exceeds bound",
				}
			}
			continue

		case reservedLabelMask10, reservedLabelMask01:
			return "", offset, &errors.WireError{
				Kind:      errors.KindReservedLabelKind,
				Operation: "decode name",
				Offset:    pos,
				Message:   "label length octet has reserved top-two-bits pattern",
			}
		}

		if length == 0 {
			if !jumped {
				newOffset = pos + 1
			}
			labels = append(labels, "")
			break decodeLoop
		}

		// length's top two bits are 00 here (pointers and the reserved
		// patterns were already dispatched above), which caps length at
		// maxLabelLength by construction — no separate bound needed.
		if pos+1+int(length) > len(msg) {
			return "", offset, &errors.WireError{
				Kind:      errors.KindShortHeader,
				Operation: "decode name",
				Offset:    pos,
				Message:   "truncated label",
			}
		}

		labels = append(labels, string(msg[pos+1:pos+1+int(length)]))
		pos += 1 + int(length)
	}

	// Drop the synthetic empty trailing element that marked end-of-name.
	literal := labels[:len(labels)-1]
	name = strings.Join(literal, ".")

	if len(name) > maxNameLength {
		return "", offset, &errors.WireError{
			Kind:      errors.KindNameTooLong,
			Operation: "decode name",
			Offset:    offset,
			Message:   "decoded name exceeds 255 bytes",
		}
	}
	return name, newOffset, nil
}

// EncodeName encodes a dotted name into wire format: length-prefixed
// ASCII labels terminated by a zero octet. The encoder never emits
// compression pointers; every query it builds is fully qualified.
func EncodeName(name string) ([]byte, error) {
	if name == "" {
		return nil, &errors.WireError{
			Kind:      errors.KindEmptyName,
			Operation: "encode name",
			Offset:    -1,
			Message:   "name cannot be empty",
		}
	}

	trimmed := strings.TrimSuffix(name, ".")
	labels := strings.Split(trimmed, ".")

	encoded := make([]byte, 0, maxNameLength)
	for _, label := range labels {
		if label == "" {
			return nil, &errors.WireError{
				Kind:      errors.KindEmptyName,
				Operation: "encode name",
				Offset:    -1,
				Message:   "empty label (consecutive dots)",
			}
		}
		if len(label) > maxLabelLength {
			return nil, &errors.WireError{
				Kind:      errors.KindLabelTooLong,
				Operation: "encode name",
				Offset:    -1,
				Message:   "label exceeds 63 bytes: " + label,
			}
		}
		for _, ch := range label {
			if ch > 127 {
				return nil, &errors.WireError{
					Kind:      errors.KindNonAscii,
					Operation: "encode name",
					Offset:    -1,
					Message:   "non-ASCII character in label: " + label,
				}
			}
		}
		encoded = append(encoded, byte(len(label)))
		encoded = append(encoded, label...)
	}
	encoded = append(encoded, 0)

	if len(encoded) > maxNameLength {
		return nil, &errors.WireError{
			Kind:      errors.KindNameTooLong,
			Operation: "encode name",
			Offset:    -1,
			Message:   "encoded name exceeds 255 bytes",
		}
	}
	return encoded, nil
}
