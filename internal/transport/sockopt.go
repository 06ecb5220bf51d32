package transport

import (
	"fmt"
	"net"
	"syscall"
)

// ReceiveBufferSize reads back the kernel socket receive buffer size
// (SO_RCVBUF) of conn's underlying file descriptor. It exists only for
// the CLI's verbose diagnostic output; the resolver never needs it to
// function.
func ReceiveBufferSize(conn net.Conn) (int, error) {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return 0, fmt.Errorf("connection does not expose a raw file descriptor")
	}
	rawConn, err := sc.SyscallConn()
	if err != nil {
		return 0, fmt.Errorf("getting raw conn: %w", err)
	}

	var size int
	var sockoptErr error
	if err := rawConn.Control(func(fd uintptr) {
		size, sockoptErr = getReceiveBufferSize(fd)
	}); err != nil {
		return 0, fmt.Errorf("raw conn control failed: %w", err)
	}
	return size, sockoptErr
}
