// Package transport implements the single-shot UDP datagram exchange that
// carries a query to an upstream resolver and returns its response. The
// codec in internal/message never touches a socket; this package is the
// only place I/O happens.
package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/joshuafuller/askdig/internal/errors"
)

// DefaultTimeout is the receive timeout used when a caller does not
// override it.
const DefaultTimeout = 5 * time.Second

// Exchange is a single bound UDP endpoint connected to one upstream
// resolver. It is built fresh per query and closed after one
// send/receive round trip; there is no connection reuse.
type Exchange struct {
	conn    net.Conn
	timeout time.Duration
}

// Dial binds an ephemeral local UDP endpoint on the unspecified address
// and connects it to upstream, a host:port address (the resolver passes
// port 53). timeout bounds the subsequent
// Receive call; zero means DefaultTimeout.
func Dial(upstream string, timeout time.Duration) (*Exchange, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	conn, err := net.Dial("udp4", upstream)
	if err != nil {
		return nil, &errors.NetworkError{
			Kind:      errors.KindIO,
			Operation: "dial upstream",
			Err:       err,
			Details:   fmt.Sprintf("connecting to %s", upstream),
		}
	}

	return &Exchange{conn: conn, timeout: timeout}, nil
}

// LocalAddr returns the ephemeral endpoint the query was sent from.
func (e *Exchange) LocalAddr() net.Addr {
	return e.conn.LocalAddr()
}

// ReceiveBufferSize reads back the kernel socket receive buffer size
// (SO_RCVBUF) of the exchange's underlying connection, for diagnostic
// output only — Receive works the same regardless of its value.
func (e *Exchange) ReceiveBufferSize() (int, error) {
	return ReceiveBufferSize(e.conn)
}

// Send transmits packet once. Per the single-shot contract there is no
// retry on a short write; a short write is reported as an error.
func (e *Exchange) Send(ctx context.Context, packet []byte) error {
	if deadline, ok := ctx.Deadline(); ok {
		if err := e.conn.SetWriteDeadline(deadline); err != nil {
			return &errors.NetworkError{Kind: errors.KindIO, Operation: "set write deadline", Err: err}
		}
	}

	n, err := e.conn.Write(packet)
	if err != nil {
		return &errors.NetworkError{Kind: errors.KindIO, Operation: "send query", Err: err}
	}
	if n != len(packet) {
		return &errors.NetworkError{
			Kind:      errors.KindIO,
			Operation: "send query",
			Err:       fmt.Errorf("partial write: %d/%d bytes", n, len(packet)),
		}
	}
	return nil
}

// Receive waits for one datagram, bounded by the configured timeout (or
// ctx's deadline if earlier). It reads into a pooled 4096-byte buffer and
// returns a copy truncated to the number of bytes actually received. A
// timeout surfaces as KindNoResponse; any other read failure as KindIO.
func (e *Exchange) Receive(ctx context.Context) ([]byte, error) {
	deadline := time.Now().Add(e.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := e.conn.SetReadDeadline(deadline); err != nil {
		return nil, &errors.NetworkError{Kind: errors.KindIO, Operation: "set read deadline", Err: err}
	}

	bufPtr := GetBuffer()
	defer PutBuffer(bufPtr)
	buf := *bufPtr

	n, err := e.conn.Read(buf)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, &errors.NetworkError{Kind: errors.KindNoResponse, Operation: "receive response", Err: err}
		}
		return nil, &errors.NetworkError{Kind: errors.KindIO, Operation: "receive response", Err: err}
	}

	result := make([]byte, n)
	copy(result, buf[:n])
	return result, nil
}

// Close releases the socket. No further Send/Receive calls are valid
// afterward.
func (e *Exchange) Close() error {
	if e.conn == nil {
		return nil
	}
	if err := e.conn.Close(); err != nil {
		return &errors.NetworkError{Kind: errors.KindIO, Operation: "close socket", Err: err}
	}
	return nil
}
