//go:build !nomysql

package mysql

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestDSN(t *testing.T) {
	c, err := New(Config{
		Host:     "db.example.com",
		Port:     3307,
		User:     "bench",
		Password: "secret",
		Database: "test",
	})
	if err != nil {
		t.Fatalf("Didn't expect an error: %v", err)
	}

	dsn := c.dsn(30 * time.Second)
	if got, want := dsn, "bench:secret@tcp(db.example.com:3307)/test?charset=utf8mb4&timeout=30s"; got != want {
		t.Errorf("Expected DSN %q, got %q", want, got)
	}
	if got, want := c.Addr(), "db.example.com:3307"; got != want {
		t.Errorf("Expected Addr %q, got %q", want, got)
	}
}

func TestNewDefaultPort(t *testing.T) {
	c, err := New(Config{Host: "localhost"})
	if err != nil {
		t.Fatalf("Didn't expect an error: %v", err)
	}
	if got, want := c.Addr(), "localhost:3306"; got != want {
		t.Errorf("Expected Addr %q, got %q", want, got)
	}
}

func TestQueryConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	srv, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Couldn't reserve a port: %v", err)
	}
	addr := srv.Addr().(*net.TCPAddr)
	srv.Close()

	c, err := New(Config{
		Host:     "localhost",
		Port:     addr.Port,
		User:     "root",
		Database: "test",
	})
	if err != nil {
		t.Fatalf("Didn't expect an error: %v", err)
	}

	result := c.Query("SELECT 1", 2*time.Second)
	if got, want := result.Success, false; got != want {
		t.Errorf("Expected result.Success=%v, got %v", want, got)
	}
	if got, want := result.ElapsedMs, 0.0; got != want {
		t.Errorf("Expected ElapsedMs=%f on failure, got %f", want, got)
	}
	if result.Response == "" {
		t.Error("Expected a non-empty diagnostic")
	}
	if strings.Contains(result.Response, "panic") {
		t.Errorf("Diagnostic looks wrong: %q", result.Response)
	}
}
