//go:build windows

package transport

import "golang.org/x/sys/windows"

func getReceiveBufferSize(fd uintptr) (int, error) {
	return windows.GetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_RCVBUF)
}
