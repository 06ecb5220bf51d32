//go:build darwin

package transport

import "golang.org/x/sys/unix"

func getReceiveBufferSize(fd uintptr) (int, error) {
	return unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF)
}
