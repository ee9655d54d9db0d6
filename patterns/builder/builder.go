// Package builder demonstrates the Builder pattern: assembling a complex
// value step by step through a fluent builder, then validating at the end.
package builder

import (
	"errors"
	"time"
)

// Server is the finished product. Fields are set through ServerBuilder.
type Server struct {
	Host    string
	Port    int
	TLS     bool
	Timeout time.Duration
}

// ServerBuilder collects settings before building a Server.
type ServerBuilder struct {
	host    string
	port    int
	tls     bool
	timeout time.Duration
}

// NewServerBuilder starts a builder with sensible defaults.
func NewServerBuilder() *ServerBuilder {
	return &ServerBuilder{
		host:    "localhost",
		port:    8080,
		timeout: 30 * time.Second,
	}
}

func (b *ServerBuilder) Host(host string) *ServerBuilder {
	b.host = host
	return b
}

func (b *ServerBuilder) Port(port int) *ServerBuilder {
	b.port = port
	return b
}

func (b *ServerBuilder) TLS() *ServerBuilder {
	b.tls = true
	return b
}

func (b *ServerBuilder) Timeout(d time.Duration) *ServerBuilder {
	b.timeout = d
	return b
}

// Build validates the collected settings and returns the Server.
func (b *ServerBuilder) Build() (*Server, error) {
	if b.host == "" {
		return nil, errors.New("host must not be empty")
	}
	if b.port < 1 || b.port > 65535 {
		return nil, errors.New("port must be between 1 and 65535")
	}
	return &Server{
		Host:    b.host,
		Port:    b.port,
		TLS:     b.tls,
		Timeout: b.timeout,
	}, nil
}
