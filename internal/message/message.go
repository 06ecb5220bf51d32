// Package message implements the RFC 1035 §4 wire format: header, name,
// question, and resource-record codecs, and the message-level orchestration
// that ties them together.
package message

import (
	"github.com/joshuafuller/askdig/internal/protocol"
)

// Message is a complete decoded DNS message: header plus its four
// sections. Counts in Header equal the lengths of the corresponding
// slices once DecodeMessage has returned successfully.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []Record
	Authorities []Record
	Additionals []Record
}

// EncodeQuery builds a complete query message: header (QR=0, Opcode=Query,
// RD per argument, qdcount=1) followed by one encoded question. Extra
// trailing bytes are never produced.
func EncodeQuery(id uint16, name string, qtype protocol.RecordType, qclass protocol.DNSClass, recursionDesired bool) ([]byte, error) {
	q := Question{Name: name, QType: qtype, QClass: qclass}
	encodedQuestion, err := EncodeQuestion(q)
	if err != nil {
		return nil, err
	}
	header := EncodeQueryHeader(id, protocol.OpcodeQuery, recursionDesired, 1)
	return append(header, encodedQuestion...), nil
}

// DecodeMessage decodes a full message: the header, then qdcount
// questions, ancount answers, nscount authorities, and arcount
// additionals, each advancing a shared cursor. Trailing bytes beyond the
// last decoded section are ignored.
func DecodeMessage(buf []byte) (Message, error) {
	header, err := DecodeHeader(buf)
	if err != nil {
		return Message{}, err
	}

	cursor := headerSize
	msg := Message{Header: header}

	for i := 0; i < int(header.QDCount); i++ {
		q, next, err := DecodeQuestion(buf, cursor)
		if err != nil {
			return Message{}, err
		}
		msg.Questions = append(msg.Questions, q)
		cursor = next
	}

	decodeRecords := func(count uint16) ([]Record, error) {
		records := make([]Record, 0, count)
		for i := 0; i < int(count); i++ {
			r, next, err := DecodeRecord(buf, cursor)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
			cursor = next
		}
		return records, nil
	}

	if msg.Answers, err = decodeRecords(header.ANCount); err != nil {
		return Message{}, err
	}
	if msg.Authorities, err = decodeRecords(header.NSCount); err != nil {
		return Message{}, err
	}
	if msg.Additionals, err = decodeRecords(header.ARCount); err != nil {
		return Message{}, err
	}

	return msg, nil
}
