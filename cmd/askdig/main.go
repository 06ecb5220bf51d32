// Command askdig resolves one DNS record against a chosen upstream and
// prints the parsed response.
//
// Usage:
//
//	askdig --uri example.com --record A --server google
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	askdigerrors "github.com/joshuafuller/askdig/internal/errors"
	"github.com/joshuafuller/askdig/internal/message"
	"github.com/joshuafuller/askdig/internal/protocol"
	"github.com/joshuafuller/askdig/resolver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("askdig", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var uri string
	fs.StringVar(&uri, "uri", "", "dotted domain name to query (required)")

	var server string
	fs.StringVar(&server, "server", "google", "upstream keyword (google, cloudflare, quad9) or a literal IPv4 address")

	var recordName string
	fs.StringVar(&recordName, "record", "A", "record type to request (A, AAAA, CNAME, MX, NS, ...)")

	var recursionDesired bool
	fs.BoolVar(&recursionDesired, "r", false, "set the recursion-desired bit")
	fs.BoolVar(&recursionDesired, "recursion_desired", false, "set the recursion-desired bit")

	var verbose bool
	fs.BoolVar(&verbose, "v", false, "dump the parsed query, header, and answers")
	fs.BoolVar(&verbose, "verbose", false, "dump the parsed query, header, and answers")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if uri == "" {
		fmt.Fprintln(stderr, "askdig: --uri is required")
		return 2
	}

	qtype, ok := protocol.RecordTypeFromString(strings.ToUpper(recordName))
	if !ok || qtype.IsPseudoType() {
		fmt.Fprintf(stderr, "askdig: unrecognized record type %q\n", recordName)
		return 2
	}

	upstream, err := resolver.UpstreamFromKeyword(strings.ToLower(server))
	if err != nil {
		fmt.Fprintf(stderr, "askdig: %v\n", err)
		return 2
	}

	if verbose {
		fmt.Fprintf(stdout, "query: uri=%s record=%s server=%s recursion_desired=%v\n", uri, qtype, upstream, recursionDesired)
	}

	result, err := resolver.Resolve(context.Background(), uri, qtype, protocol.ClassIN, upstream,
		resolver.WithRecursionDesired(recursionDesired),
	)

	var respErr *askdigerrors.ResponseError
	isResponseError := false
	if e, ok := err.(*askdigerrors.ResponseError); ok {
		respErr = e
		isResponseError = true
	}

	if err != nil && !isResponseError {
		fmt.Fprintf(stderr, "askdig: %v\n", err)
		return 1
	}

	printResult(stdout, result, verbose)

	if isResponseError {
		fmt.Fprintf(stderr, "askdig: %v\n", respErr)
		return 1
	}
	return 0
}

func printResult(w *os.File, result *resolver.Result, verbose bool) {
	header := result.Message.Header
	if verbose {
		fmt.Fprintf(w, "header: id=%04x opcode=%s rcode=%s qd=%d an=%d ns=%d ar=%d\n",
			header.ID, header.Opcode(), header.RCode(),
			header.QDCount, header.ANCount, header.NSCount, header.ARCount)
		for _, q := range result.Message.Questions {
			fmt.Fprintf(w, "question: %s %s %s\n", q.Name, q.QType, q.QClass)
		}
		if result.ReceiveBufferSize > 0 {
			fmt.Fprintf(w, "socket: rcvbuf=%d bytes\n", result.ReceiveBufferSize)
		}
	}

	if result.Truncated {
		fmt.Fprintln(w, "warning: response is truncated (TC=1)")
	}

	if len(result.Message.Answers) == 0 {
		fmt.Fprintln(w, "No answers received.")
		return
	}

	for _, a := range result.Message.Answers {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", a.Name, a.TTL, a.Class, a.Type, formatRData(a.RData))
	}
}

func formatRData(data message.RData) string {
	switch v := data.(type) {
	case message.ARData:
		return fmt.Sprintf("%d.%d.%d.%d", v.Addr[0], v.Addr[1], v.Addr[2], v.Addr[3])
	case message.AAAARData:
		parts := make([]string, 8)
		for i := 0; i < 8; i++ {
			parts[i] = fmt.Sprintf("%02x%02x", v.Addr[2*i], v.Addr[2*i+1])
		}
		return strings.Join(parts, ":")
	case message.NameRData:
		return v.Name
	case message.MXRData:
		return fmt.Sprintf("%d %s", v.Preference, v.Exchange)
	case message.TXTRData:
		return strings.Join(v.Strings, " ")
	case message.SOARData:
		return fmt.Sprintf("%s %s %d %d %d %d %d", v.MName, v.RName, v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum)
	case message.HINFORData:
		return fmt.Sprintf("%s %s", v.CPU, v.OS)
	case message.RawRData:
		return fmt.Sprintf("% x", v.Bytes)
	default:
		return ""
	}
}
