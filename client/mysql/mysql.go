//go:build !nomysql

// Package mysql implements the benchmark client for MySQL FULLTEXT
// queries. Building with the nomysql tag swaps in a stub whose
// constructor always fails, so the CLI can report the backend as
// unavailable without attempting any query.
package mysql

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // register the mysql driver
	"github.com/jmoiron/sqlx"

	"github.com/mygramdb/mygrambench/types"
)

// DefaultPort is the standard MySQL server port.
const DefaultPort = 3306

// Config holds connection settings for the MySQL backend. The charset
// is fixed to utf8mb4.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Client executes SQL statements against a MySQL server. Each call to
// Query opens and closes its own connection; there is no pooling, so
// every measurement pays the full cost of a cold call.
type Client struct {
	cfg Config
}

// New returns a MySQL benchmark client. The error return reports
// whether MySQL support is compiled in; with the default build it is
// always nil.
func New(cfg Config) (*Client, error) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return &Client{cfg: cfg}, nil
}

// Addr returns the host:port the client connects to.
func (c *Client) Addr() string {
	return fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
}

func (c *Client) dsn(timeout time.Duration) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&timeout=%s",
		c.cfg.User, c.cfg.Password, c.cfg.Host, c.cfg.Port, c.cfg.Database, timeout)
}

// Query runs statement on a fresh connection and reports the row
// count. Success means the statement executed without error,
// regardless of how many rows matched. Elapsed time includes
// connection setup; the timeout bounds the whole call. Failures are
// reported in the result, never returned as an error.
func (c *Client) Query(statement string, timeout time.Duration) types.QueryResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()

	db, err := sqlx.ConnectContext(ctx, "mysql", c.dsn(timeout))
	if err != nil {
		return types.QueryResult{Response: err.Error()}
	}
	defer db.Close()

	rows, err := db.QueryxContext(ctx, statement)
	if err != nil {
		return types.QueryResult{Response: err.Error()}
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return types.QueryResult{Response: err.Error()}
	}

	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	return types.QueryResult{
		Success:   true,
		ElapsedMs: elapsed,
		Response:  fmt.Sprintf("%d rows", count),
	}
}
