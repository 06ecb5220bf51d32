//go:build linux

package transport

import "golang.org/x/sys/unix"

// getReceiveBufferSize reads SO_RCVBUF via golang.org/x/sys/unix, which
// carries the syscall numbers net doesn't expose directly.
func getReceiveBufferSize(fd uintptr) (int, error) {
	return unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF)
}
