// Package resolver wires the message codec and the transport together
// into the single public operation this module exists for: send one
// query to one upstream, decode its response, and hand back a typed
// result. It owns no state across calls.
package resolver

import (
	"context"
	"crypto/rand"
	"fmt"

	askdigerrors "github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/message"
	"github.com/joshuafuller/askdig/internal/protocol"
	"github.com/joshuafuller/askdig/internal/transport"
)

// Result is everything the CLI needs to report a single query: the
// decoded message plus a flag for whether the response arrived
// truncated (TC=1), which is informational rather than fatal.
type Result struct {
	Message   message.Message
	Truncated bool

	// ReceiveBufferSize is the kernel socket receive buffer size (SO_RCVBUF)
	// observed on the exchange's socket, or 0 if the platform could not
	// report it. Diagnostic only.
	ReceiveBufferSize int
}

// Resolve sends a single question for name/qtype/qclass to upstream and
// decodes the response.
//
// A query is built with a random 16-bit transaction ID, sent once over a
// fresh UDP socket, and matched against the response ID; there are no
// retries and no TCP fallback. A response rcode other than None surfaces
// as a *askdigerrors.ResponseError; the caller decides whether that is
// fatal.
func Resolve(ctx context.Context, name string, qtype protocol.RecordType, qclass protocol.DNSClass, upstream Upstream, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return resolveAddr(ctx, name, qtype, qclass, upstream.dialAddr(), cfg)
}

// resolveAddr is Resolve's implementation, parameterized on the already
// resolved dial address so tests can point it at a loopback listener
// instead of a well-known upstream's fixed port 53.
func resolveAddr(ctx context.Context, name string, qtype protocol.RecordType, qclass protocol.DNSClass, dialAddr string, cfg config) (*Result, error) {
	id, err := newTransactionID()
	if err != nil {
		return nil, err
	}

	query, err := message.EncodeQuery(id, name, qtype, qclass, cfg.recursionDesired)
	if err != nil {
		return nil, err
	}

	ex, err := transport.Dial(dialAddr, cfg.timeout)
	if err != nil {
		return nil, err
	}
	defer ex.Close()

	if err := ex.Send(ctx, query); err != nil {
		return nil, err
	}

	response, err := ex.Receive(ctx)
	if err != nil {
		return nil, err
	}

	decoded, err := message.DecodeMessage(response)
	if err != nil {
		return nil, err
	}

	if decoded.Header.ID != id {
		return nil, &askdigerrors.NetworkError{
			Kind:      askdigerrors.KindIO,
			Operation: "resolve",
			Err:       fmt.Errorf("response transaction ID %04x does not match query %04x", decoded.Header.ID, id),
		}
	}

	rcvBufSize, _ := ex.ReceiveBufferSize()

	result := &Result{
		Message:           decoded,
		Truncated:         decoded.Header.Truncated(),
		ReceiveBufferSize: rcvBufSize,
	}

	if rcode := decoded.Header.RCode(); rcode.IsError() {
		return result, &askdigerrors.ResponseError{RCode: uint8(rcode), Name: rcode.String()}
	}

	return result, nil
}

// newTransactionID draws a 16-bit DNS transaction ID from a
// cryptographically secure source, so that responses from a malicious or
// off-path sender are hard to spoof by guessing the ID.
func newTransactionID() (uint16, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, &askdigerrors.NetworkError{
			Kind:      askdigerrors.KindIO,
			Operation: "generate transaction id",
			Err:       err,
		}
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}
