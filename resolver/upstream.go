package resolver

import (
	"fmt"
	"net"

	"github.com/joshuafuller/askdig/internal/errors"
)

// Upstream identifies the recursive nameserver a query is sent to. The
// well-known set matches the CLI's --server keyword vocabulary; Custom
// carries a literal IPv4 address for anything else.
type Upstream struct {
	addr string
}

var (
	Google     = Upstream{addr: "8.8.8.8"}
	Cloudflare = Upstream{addr: "1.1.1.1"}
	Quad9      = Upstream{addr: "9.9.9.9"}
)

// Custom builds an Upstream from a literal IPv4 address. It returns an
// error if addr does not parse as an IPv4 address.
func Custom(addr string) (Upstream, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return Upstream{}, &errors.NetworkError{
			Kind:      errors.KindIO,
			Operation: "resolve upstream",
			Err:       fmt.Errorf("not a valid IPv4 address: %s", addr),
		}
	}
	return Upstream{addr: ip.To4().String()}, nil
}

// UpstreamFromKeyword resolves one of the CLI's --server keywords
// ("google", "cloudflare", "quad9") to its well-known Upstream, or treats
// the keyword as a literal IPv4 address via Custom.
func UpstreamFromKeyword(keyword string) (Upstream, error) {
	switch keyword {
	case "google":
		return Google, nil
	case "cloudflare":
		return Cloudflare, nil
	case "quad9":
		return Quad9, nil
	default:
		return Custom(keyword)
	}
}

const dnsPort = "53"

// dialAddr returns the upstream's host:port form for transport.Dial.
func (u Upstream) dialAddr() string {
	return net.JoinHostPort(u.addr, dnsPort)
}

// String returns the upstream's dotted IPv4 address.
func (u Upstream) String() string {
	return u.addr
}
