package protocol

import "fmt"

// Opcode is the 4-bit OPCODE field of the DNS header (RFC 1035 §4.1.1).
// Values outside the known set surface as Reserved(n) rather than an
// error — the header codec never rejects an opcode, it just reports it.
type Opcode uint8

const (
	OpcodeQuery        Opcode = 0
	OpcodeInverseQuery Opcode = 1
	OpcodeStatus       Opcode = 2
)

func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "Query"
	case OpcodeInverseQuery:
		return "InverseQuery"
	case OpcodeStatus:
		return "Status"
	default:
		return fmt.Sprintf("Reserved(%d)", uint8(o))
	}
}

// RCode is the 4-bit RCODE field of the DNS header (RFC 1035 §4.1.1).
// Like Opcode, unrecognized values are Reserved(n), not an error; only
// the resolver layer decides whether a given rcode should fail a query.
type RCode uint8

const (
	RCodeNone    RCode = 0
	RCodeFormat  RCode = 1
	RCodeServer  RCode = 2
	RCodeName    RCode = 3
	RCodeNotImpl RCode = 4
	RCodeRefused RCode = 5
)

func (r RCode) String() string {
	switch r {
	case RCodeNone:
		return "None"
	case RCodeFormat:
		return "Format"
	case RCodeServer:
		return "Server"
	case RCodeName:
		return "Name"
	case RCodeNotImpl:
		return "NotImpl"
	case RCodeRefused:
		return "Refused"
	default:
		return fmt.Sprintf("Reserved(%d)", uint8(r))
	}
}

// IsError reports whether r represents a failure the resolver should
// surface as a query error (Format, Server, Name, NotImpl, Refused, or
// any reserved value 6..15). Only None is not an error.
func (r RCode) IsError() bool {
	switch r {
	case RCodeFormat, RCodeServer, RCodeName, RCodeNotImpl, RCodeRefused:
		return true
	default:
		return r > RCodeRefused
	}
}
