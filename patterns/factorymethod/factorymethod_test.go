package factorymethod

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShape_ConstructsByKind(t *testing.T) {
	c, err := NewShape("circle", 2)
	require.NoError(t, err)
	require.Equal(t, "circle", c.Kind())
	require.InDelta(t, 12.566, c.Area(), 0.001)

	s, err := NewShape("square", 3)
	require.NoError(t, err)
	require.Equal(t, "square", s.Kind())
	require.InDelta(t, 9.0, s.Area(), 1e-9)
}

func TestNewShape_UnknownKind(t *testing.T) {
	_, err := NewShape("triangle", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "triangle")
}
