package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Defaults(t *testing.T) {
	s, err := NewServerBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, &Server{Host: "localhost", Port: 8080, Timeout: 30 * time.Second}, s)
}

func TestBuilder_FluentChain(t *testing.T) {
	s, err := NewServerBuilder().
		Host("example.org").
		Port(443).
		TLS().
		Timeout(5 * time.Second).
		Build()
	require.NoError(t, err)
	require.Equal(t, &Server{Host: "example.org", Port: 443, TLS: true, Timeout: 5 * time.Second}, s)
}

func TestBuilder_RejectsInvalidPort(t *testing.T) {
	_, err := NewServerBuilder().Port(0).Build()
	require.Error(t, err)

	_, err = NewServerBuilder().Port(70000).Build()
	require.Error(t, err)
}

func TestBuilder_RejectsEmptyHost(t *testing.T) {
	_, err := NewServerBuilder().Host("").Build()
	require.Error(t, err)
}
