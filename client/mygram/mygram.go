// Package mygram implements the benchmark client for MygramDB's
// line-based TCP protocol.
package mygram

import (
	"bytes"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/mygramdb/mygrambench/types"
)

// DefaultPort is the port a MygramDB server listens on.
const DefaultPort = 11016

// readBufferSize is the per-read chunk size. Responses larger than
// this arrive across multiple reads and are accumulated until the
// terminator shows up.
const readBufferSize = 64 * 1024

// terminator frames both requests and responses on the wire.
const terminator = "\r\n"

// Client issues queries to a MygramDB server. Each call to Query
// opens its own connection; the client itself carries no state
// between calls.
type Client struct {
	// Host is the server host name or address.
	Host string

	// Port is the server TCP port. Zero means DefaultPort.
	Port int
}

// Addr returns the host:port the client dials.
func (c Client) Addr() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// Query sends command terminated by CRLF and reads until the
// accumulated response ends with CRLF or the server closes the
// connection. The timeout covers the whole exchange, connection setup
// included, not each individual read; elapsed time is measured over
// the same span. Any transport or protocol failure is reported in the
// result, never returned as an error.
func (c Client) Query(command string, timeout time.Duration) types.QueryResult {
	start := time.Now()

	conn, err := net.DialTimeout("tcp", c.Addr(), timeout)
	if err != nil {
		return types.QueryResult{Response: err.Error()}
	}
	defer conn.Close()

	// One deadline across the entire exchange.
	if err := conn.SetDeadline(start.Add(timeout)); err != nil {
		return types.QueryResult{Response: err.Error()}
	}

	if _, err := conn.Write([]byte(command + terminator)); err != nil {
		return types.QueryResult{Response: err.Error()}
	}

	var data []byte
	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		data = append(data, buf[:n]...)
		if bytes.HasSuffix(data, []byte(terminator)) {
			break
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.QueryResult{Response: err.Error()}
		}
	}

	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	response := string(data)

	if !acknowledged(response) {
		return types.QueryResult{Response: response}
	}
	return types.QueryResult{Success: true, ElapsedMs: elapsed, Response: response}
}

// acknowledged reports whether response carries one of the server's
// positive reply prefixes.
func acknowledged(response string) bool {
	return strings.HasPrefix(response, "OK ") || strings.HasPrefix(response, "(integer)")
}
