package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/joshuafuller/askdig/internal/message"
)

func TestRunRejectsMissingURI(t *testing.T) {
	stdout, stdoutCleanup := tempFile(t)
	defer stdoutCleanup()
	stderr, stderrCleanup := tempFile(t)
	defer stderrCleanup()

	code := run([]string{}, stdout, stderr)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if got := readBack(t, stderr); !strings.Contains(got, "--uri is required") {
		t.Errorf("stderr = %q, want it to mention --uri", got)
	}
}

func TestRunRejectsUnknownRecordType(t *testing.T) {
	stdout, stdoutCleanup := tempFile(t)
	defer stdoutCleanup()
	stderr, stderrCleanup := tempFile(t)
	defer stderrCleanup()

	code := run([]string{"--uri", "example.com", "--record", "BOGUS"}, stdout, stderr)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRunRejectsUnresolvableUpstream(t *testing.T) {
	stdout, stdoutCleanup := tempFile(t)
	defer stdoutCleanup()
	stderr, stderrCleanup := tempFile(t)
	defer stderrCleanup()

	code := run([]string{"--uri", "example.com", "--server", "not an ip"}, stdout, stderr)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestFormatRDataVariants(t *testing.T) {
	cases := []struct {
		data message.RData
		want string
	}{
		{message.ARData{Addr: [4]byte{8, 8, 8, 8}}, "8.8.8.8"},
		{message.NameRData{Name: "example.com"}, "example.com"},
		{message.MXRData{Preference: 10, Exchange: "mail.example.com"}, "10 mail.example.com"},
		{message.TXTRData{Strings: []string{"a", "b"}}, "a b"},
	}
	for _, c := range cases {
		if got := formatRData(c.data); got != c.want {
			t.Errorf("formatRData(%v) = %q, want %q", c.data, got, c.want)
		}
	}
}

func tempFile(t *testing.T) (*os.File, func()) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "askdig-test-*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	return f, func() { f.Close() }
}

func readBack(t *testing.T, f *os.File) string {
	t.Helper()
	if _, err := f.Seek(0, 0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	return buf.String()
}
