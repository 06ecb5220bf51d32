package message

import (
	"github.com/joshuafuller/askdig/internal/bitstream"
	"github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/protocol"
)

// RData is the type-specific payload of a resource record. Each concrete
// type below corresponds to one row of the decode table in the resource
// record codec; RawRData is the fallback for types this resolver does not
// have a structured decoder for.
type RData interface {
	isRData()
}

type ARData struct{ Addr [4]byte }

type AAAARData struct{ Addr [16]byte }

type NameRData struct{ Name string } // CNAME, NS, PTR, MB, MG, MR, MD, MF

type MXRData struct {
	Preference uint16
	Exchange   string
}

type TXTRData struct{ Strings []string }

type SOARData struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

type HINFORData struct {
	CPU string
	OS  string
}

type RawRData struct{ Bytes []byte }

func (ARData) isRData()     {}
func (AAAARData) isRData()  {}
func (NameRData) isRData()  {}
func (MXRData) isRData()    {}
func (TXTRData) isRData()   {}
func (SOARData) isRData()   {}
func (HINFORData) isRData() {}
func (RawRData) isRData()   {}

// Record is a resource record: (name, type, class, ttl, rdlength, rdata).
type Record struct {
	Name     string
	Type     protocol.RecordType
	Class    protocol.DNSClass
	TTL      uint32
	RDLength uint16
	RData    RData
}

// fixedRecordFields is the 10-byte span after the name: type, class, ttl,
// rdlength.
const fixedRecordFields = 10

// DecodeRecord decodes a resource record at cursor within the full message
// msg, returning the record and the cursor position after it.
//
// Embedded-name payload decoders (CNAME, NS, PTR, MB, MG, MR, MD, MF, MX,
// SOA) are handed the full message, not just the rdata slice, because a
// compression pointer inside rdata is free to target any earlier offset in
// the message — including bytes outside the rdata span itself. MINFO has
// no structured decoder and is returned as RawRData.
func DecodeRecord(msg []byte, cursor int) (Record, int, error) {
	name, next, err := DecodeName(msg, cursor)
	if err != nil {
		return Record{}, cursor, err
	}
	if next+fixedRecordFields > len(msg) {
		return Record{}, cursor, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode record",
			Offset:    next,
			Message:   "truncated type/class/ttl/rdlength",
		}
	}

	rtype := protocol.RecordType(bitstream.ReadUint16(msg[next : next+2]))
	rclass := protocol.DNSClass(bitstream.ReadUint16(msg[next+2 : next+4]))
	ttl := bitstream.ReadUint32(msg[next+4 : next+8])
	rdlength := bitstream.ReadUint16(msg[next+8 : next+10])
	rdataStart := next + fixedRecordFields

	if rtype.IsPseudoType() {
		return Record{}, cursor, &errors.WireError{
			Kind:      errors.KindInvalidType,
			Operation: "decode record",
			Offset:    next,
			Message:   "pseudo-type is not legal in a resource record",
		}
	}

	if int(rdlength) < 0 || rdataStart+int(rdlength) > len(msg) {
		return Record{}, cursor, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode record",
			Offset:    rdataStart,
			Message:   "truncated rdata",
		}
	}
	rdataSlice := msg[rdataStart : rdataStart+int(rdlength)]

	rdata, consumed, err := decodeRData(rtype, msg, rdataStart, rdataSlice)
	if err != nil {
		return Record{}, cursor, err
	}
	if consumed != int(rdlength) {
		return Record{}, cursor, &errors.WireError{
			Kind:      errors.KindRdataMismatch,
			Operation: "decode record",
			Offset:    rdataStart,
			Message:   "rdata decoder did not consume exactly rdlength bytes",
		}
	}

	return Record{
		Name:     name,
		Type:     rtype,
		Class:    rclass,
		TTL:      ttl,
		RDLength: rdlength,
		RData:    rdata,
	}, rdataStart + int(rdlength), nil
}

// decodeRData dispatches on rtype. msg and rdataStart are the full message
// and the absolute offset rdata begins at — needed by any decoder that
// embeds a name, since that name may carry a compression pointer pointing
// outside rdataSlice. consumed is the number of bytes of rdataSlice the
// decoder used, which DecodeRecord checks against rdlength.
func decodeRData(rtype protocol.RecordType, msg []byte, rdataStart int, rdataSlice []byte) (RData, int, error) {
	switch rtype {
	case protocol.TypeA:
		if len(rdataSlice) != 4 {
			return nil, 0, shortRdata("A", rdataStart)
		}
		var addr [4]byte
		copy(addr[:], rdataSlice)
		return ARData{Addr: addr}, 4, nil

	case protocol.TypeAAAA:
		if len(rdataSlice) != 16 {
			return nil, 0, shortRdata("AAAA", rdataStart)
		}
		var addr [16]byte
		copy(addr[:], rdataSlice)
		return AAAARData{Addr: addr}, 16, nil

	case protocol.TypeCNAME, protocol.TypeNS, protocol.TypePTR,
		protocol.TypeMB, protocol.TypeMG, protocol.TypeMR, protocol.TypeMD, protocol.TypeMF:
		name, next, err := DecodeName(msg, rdataStart)
		if err != nil {
			return nil, 0, err
		}
		return NameRData{Name: name}, next - rdataStart, nil

	case protocol.TypeMX:
		if len(rdataSlice) < 2 {
			return nil, 0, shortRdata("MX", rdataStart)
		}
		preference := bitstream.ReadUint16(rdataSlice[0:2])
		exchange, next, err := DecodeName(msg, rdataStart+2)
		if err != nil {
			return nil, 0, err
		}
		return MXRData{Preference: preference, Exchange: exchange}, next - rdataStart, nil

	case protocol.TypeTXT:
		strs, err := decodeCharacterStrings(rdataSlice)
		if err != nil {
			return nil, 0, err
		}
		return TXTRData{Strings: strs}, len(rdataSlice), nil

	case protocol.TypeSOA:
		mname, next1, err := DecodeName(msg, rdataStart)
		if err != nil {
			return nil, 0, err
		}
		rname, next2, err := DecodeName(msg, next1)
		if err != nil {
			return nil, 0, err
		}
		if next2+20 > len(msg) {
			return nil, 0, shortRdata("SOA", rdataStart)
		}
		soa := SOARData{
			MName:   mname,
			RName:   rname,
			Serial:  bitstream.ReadUint32(msg[next2 : next2+4]),
			Refresh: bitstream.ReadUint32(msg[next2+4 : next2+8]),
			Retry:   bitstream.ReadUint32(msg[next2+8 : next2+12]),
			Expire:  bitstream.ReadUint32(msg[next2+12 : next2+16]),
			Minimum: bitstream.ReadUint32(msg[next2+16 : next2+20]),
		}
		return soa, next2 + 20 - rdataStart, nil

	case protocol.TypeHINFO:
		cpu, rest, err := decodeCharacterString(rdataSlice)
		if err != nil {
			return nil, 0, err
		}
		os, rest2, err := decodeCharacterString(rest)
		if err != nil {
			return nil, 0, err
		}
		if len(rest2) != 0 {
			return nil, 0, shortRdata("HINFO", rdataStart)
		}
		return HINFORData{CPU: cpu, OS: os}, len(rdataSlice), nil

	default:
		raw := make([]byte, len(rdataSlice))
		copy(raw, rdataSlice)
		return RawRData{Bytes: raw}, len(rdataSlice), nil
	}
}

func shortRdata(typeName string, offset int) error {
	return &errors.WireError{
		Kind:      errors.KindRdataMismatch,
		Operation: "decode rdata",
		Offset:    offset,
		Message:   typeName + " rdata has the wrong length",
	}
}

// decodeCharacterString decodes one length-prefixed string per RFC 1035
// §3.3 and returns the remainder of buf.
func decodeCharacterString(buf []byte) (string, []byte, error) {
	if len(buf) == 0 {
		return "", nil, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode character-string",
			Offset:    -1,
			Message:   "missing length octet",
		}
	}
	length := int(buf[0])
	if 1+length > len(buf) {
		return "", nil, &errors.WireError{
			Kind:      errors.KindShortHeader,
			Operation: "decode character-string",
			Offset:    -1,
			Message:   "truncated character-string",
		}
	}
	return string(buf[1 : 1+length]), buf[1+length:], nil
}

// decodeCharacterStrings decodes one or more concatenated length-prefixed
// strings that exactly fill buf (used by TXT).
func decodeCharacterStrings(buf []byte) ([]string, error) {
	var out []string
	for len(buf) > 0 {
		s, rest, err := decodeCharacterString(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		buf = rest
	}
	return out, nil
}
