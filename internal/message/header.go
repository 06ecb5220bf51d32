package message

import (
	"github.com/joshuafuller/askdig/internal/bitstream"
	"github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/protocol"
)

// headerSize is the fixed wire size of the DNS header in bytes (RFC 1035 §4.1.1).
const headerSize = 12

// Header is the 12-byte DNS message header.
//
//	                                 1  1  1  1  1  1
//	   0  1  2  3  4  5  6  7  8  9  0  1  2  3  4  5
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 |                      ID                       |
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 |QR|   Opcode  |AA|TC|RD|RA|   Z    |   RCODE   |
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 |                    QDCOUNT                    |
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 |                    ANCOUNT                    |
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 |                    NSCOUNT                    |
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 |                    ARCOUNT                    |
//	 +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
type Header struct {
	ID      uint16
	Flags   uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

func (h Header) IsQuery() bool    { return !bitstream.BitIsSet(byte(h.Flags>>8), 7) }
func (h Header) IsResponse() bool { return bitstream.BitIsSet(byte(h.Flags>>8), 7) }

func (h Header) Opcode() protocol.Opcode {
	return protocol.Opcode(bitstream.BitRange(byte(h.Flags>>8), 3, 7))
}

func (h Header) RCode() protocol.RCode {
	return protocol.RCode(bitstream.BitRange(byte(h.Flags), 0, 4))
}

func (h Header) AuthoritativeAnswer() bool { return bitstream.BitIsSet(byte(h.Flags>>8), 2) }
func (h Header) Truncated() bool           { return bitstream.BitIsSet(byte(h.Flags>>8), 1) }
func (h Header) RecursionDesired() bool    { return bitstream.BitIsSet(byte(h.Flags>>8), 0) }
func (h Header) RecursionAvailable() bool  { return bitstream.BitIsSet(byte(h.Flags), 7) }

// EncodeQueryHeader builds the 12-byte header for an outgoing query: QR=0,
// the given opcode (always Query for this resolver), RD per argument,
// AA=TC=RA=Z=0, RCODE=0, and qdCount questions.
func EncodeQueryHeader(id uint16, opcode protocol.Opcode, recursionDesired bool, qdCount uint16) []byte {
	buf := make([]byte, headerSize)
	bitstream.PutUint16(buf[0:2], id)

	var flags uint16
	flags |= uint16(opcode&0x0F) << 11
	if recursionDesired {
		flags |= 1 << 8
	}
	bitstream.PutUint16(buf[2:4], flags)
	bitstream.PutUint16(buf[4:6], qdCount)
	// ancount, nscount, arcount are zero for a query.
	return buf
}

// DecodeHeader decodes the fixed 12-byte header at the start of buf.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode header",
			Offset:    len(buf),
			Message:   "need 12 bytes for header",
		}
	}
	return Header{
		ID:      bitstream.ReadUint16(buf[0:2]),
		Flags:   bitstream.ReadUint16(buf[2:4]),
		QDCount: bitstream.ReadUint16(buf[4:6]),
		ANCount: bitstream.ReadUint16(buf[6:8]),
		NSCount: bitstream.ReadUint16(buf[8:10]),
		ARCount: bitstream.ReadUint16(buf[10:12]),
	}, nil
}
