package prototype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClone_CopiesAllAttributes(t *testing.T) {
	original := &Product{Name: "mug", Price: 9.50, Tags: []string{"kitchen", "gift"}}
	clone := original.Clone()

	require.NotSame(t, original, clone)
	require.Equal(t, original, clone)
}

func TestClone_TagsAreIndependent(t *testing.T) {
	original := &Product{Name: "mug", Price: 9.50, Tags: []string{"kitchen"}}
	clone := original.Clone()

	clone.Tags[0] = "office"
	clone.Tags = append(clone.Tags, "sale")

	require.Equal(t, []string{"kitchen"}, original.Tags)
}

func TestWithPrice_OnlyChangesThePrice(t *testing.T) {
	original := &Product{Name: "mug", Price: 9.50}
	discounted := original.WithPrice(7.00)

	require.InDelta(t, 7.00, discounted.Price, 1e-9)
	require.InDelta(t, 9.50, original.Price, 1e-9)
	require.Equal(t, "mug", discounted.Name)
}
