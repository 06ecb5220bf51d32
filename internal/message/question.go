package message

import (
	"github.com/joshuafuller/askdig/internal/bitstream"
	"github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/protocol"
)

// Question is a single question-section entry: (name, qtype, qclass).
// QType may be a pseudo-type (AXFR/MAILB/MAILA/ANY) that is never legal
// in a resource record.
type Question struct {
	Name   string
	QType  protocol.RecordType
	QClass protocol.DNSClass
}

// EncodeQuestion returns the wire encoding of q: the encoded name,
// followed by qtype and qclass as big-endian uint16s.
func EncodeQuestion(q Question) ([]byte, error) {
	encodedName, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(encodedName)+4)
	copy(buf, encodedName)
	bitstream.PutUint16(buf[len(encodedName):], uint16(q.QType))
	bitstream.PutUint16(buf[len(encodedName)+2:], uint16(q.QClass))
	return buf, nil
}

// DecodeQuestion decodes a question at cursor within the full message msg,
// returning the question and the cursor position after it.
func DecodeQuestion(msg []byte, cursor int) (Question, int, error) {
	name, next, err := DecodeName(msg, cursor)
	if err != nil {
		return Question{}, cursor, err
	}
	if next+4 > len(msg) {
		return Question{}, cursor, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode question",
			Offset:    next,
			Message:   "truncated qtype/qclass",
		}
	}
	qtype := bitstream.ReadUint16(msg[next : next+2])
	qclass := bitstream.ReadUint16(msg[next+2 : next+4])
	return Question{
		Name:   name,
		QType:  protocol.RecordType(qtype),
		QClass: protocol.DNSClass(qclass),
	}, next + 4, nil
}
