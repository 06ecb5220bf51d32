package protocol

import "testing"

func TestOpcodeString(t *testing.T) {
	cases := []struct {
		op   Opcode
		want string
	}{
		{OpcodeQuery, "Query"},
		{OpcodeInverseQuery, "InverseQuery"},
		{OpcodeStatus, "Status"},
		{Opcode(9), "Reserved(9)"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("Opcode(%d).String() = %q, want %q", c.op, got, c.want)
		}
	}
}

func TestRCodeString(t *testing.T) {
	cases := []struct {
		rc   RCode
		want string
	}{
		{RCodeNone, "None"}, {RCodeFormat, "Format"}, {RCodeServer, "Server"},
		{RCodeName, "Name"}, {RCodeNotImpl, "NotImpl"}, {RCodeRefused, "Refused"},
		{RCode(11), "Reserved(11)"},
	}
	for _, c := range cases {
		if got := c.rc.String(); got != c.want {
			t.Errorf("RCode(%d).String() = %q, want %q", c.rc, got, c.want)
		}
	}
}

func TestRCodeIsError(t *testing.T) {
	for _, rc := range []RCode{RCodeFormat, RCodeServer, RCodeName, RCodeNotImpl, RCodeRefused, RCode(12)} {
		if !rc.IsError() {
			t.Errorf("RCode(%d).IsError() = false, want true", rc)
		}
	}
	if RCodeNone.IsError() {
		t.Error("RCodeNone.IsError() = true, want false")
	}
}
