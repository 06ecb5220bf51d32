package transport

import "testing"

func TestGetBufferSize(t *testing.T) {
	buf := GetBuffer()
	defer PutBuffer(buf)
	if len(*buf) != responseBufferSize {
		t.Errorf("buffer size = %d, want %d", len(*buf), responseBufferSize)
	}
}

func TestPutBufferClears(t *testing.T) {
	buf := GetBuffer()
	(*buf)[0] = 0xFF
	PutBuffer(buf)

	reused := GetBuffer()
	defer PutBuffer(reused)
	if (*reused)[0] != 0 {
		t.Errorf("reused buffer was not cleared: got %d at index 0", (*reused)[0])
	}
}
