//go:build nomysql

package mysql

import (
	"errors"
	"time"

	"github.com/mygramdb/mygrambench/types"
)

// DefaultPort is the standard MySQL server port.
const DefaultPort = 3306

// Config holds connection settings for the MySQL backend.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Client is the disabled MySQL client stub.
type Client struct{}

var errDisabled = errors.New("mysql client support is disabled (rebuild without the nomysql tag)")

// New always fails: MySQL support was compiled out.
func New(cfg Config) (*Client, error) {
	return nil, errDisabled
}

// Addr returns an empty address on the disabled stub.
func (c *Client) Addr() string { return "" }

// Query always reports the backend as unavailable.
func (c *Client) Query(statement string, timeout time.Duration) types.QueryResult {
	return types.QueryResult{Response: errDisabled.Error()}
}
