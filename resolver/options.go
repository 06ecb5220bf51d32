package resolver

import (
	"fmt"
	"time"

	"github.com/joshuafuller/askdig/internal/errors"
)

// Option is a functional option for configuring a Resolve call.
//
// Example:
//
//	result, err := resolver.Resolve(ctx, "example.com", protocol.TypeA,
//	    protocol.ClassIN, resolver.Google,
//	    resolver.WithTimeout(2*time.Second),
//	    resolver.WithRecursionDesired(true),
//	)
type Option func(*config) error

type config struct {
	timeout          time.Duration
	recursionDesired bool
}

func defaultConfig() config {
	return config{
		timeout:          5 * time.Second,
		recursionDesired: false,
	}
}

// WithTimeout sets how long to wait for a response before the query fails
// with NoResponse. Default: 5 seconds per the transport's single-shot
// exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout <= 0 {
			return &errors.NetworkError{
				Kind:      errors.KindIO,
				Operation: "configure resolver",
				Err:       fmt.Errorf("timeout must be greater than 0, got %s", timeout),
			}
		}
		c.timeout = timeout
		return nil
	}
}

// WithRecursionDesired sets the RD bit on the outgoing query. Default:
// false.
func WithRecursionDesired(recursionDesired bool) Option {
	return func(c *config) error {
		c.recursionDesired = recursionDesired
		return nil
	}
}
