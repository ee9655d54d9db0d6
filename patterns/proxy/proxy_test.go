package proxy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageProxy_LoadsLazilyAndOnce(t *testing.T) {
	p := NewImageProxy("photo.png")
	require.Equal(t, 0, p.Loads())

	require.Equal(t, "displaying photo.png", p.Display())
	require.Equal(t, "displaying photo.png", p.Display())
	require.Equal(t, 1, p.Loads())
}

func TestImageProxy_SatisfiesImage(t *testing.T) {
	var img Image = NewImageProxy("photo.png")
	require.Equal(t, "displaying photo.png", img.Display())
}
