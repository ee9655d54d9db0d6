package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Singleton\n\nOne instance.\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Singleton\n---\n# Singleton\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Singleton\n"), fm)
	require.Equal(t, []byte("# Singleton\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: Singleton\n# Singleton\n")

	_, _, had, _, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_PreservesNewlineStyle(t *testing.T) {
	input := []byte("---\r\ntitle: Proxy\r\n---\r\nbody\r\n")

	fm, body, had, style, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "\r\n", style.Newline)
	require.Equal(t, []byte("title: Proxy\r\n"), fm)
	require.Equal(t, []byte("body\r\n"), body)
}

func TestSplit_EmptyBlock_HadWithEmptyFrontmatter(t *testing.T) {
	input := []byte("---\n---\n# Bridge\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Bridge\n"), body)
}

func TestJoin_RoundTripsSplit(t *testing.T) {
	input := []byte("---\ntitle: Observer\nweight: 110\n---\n# Observer\n\nbody\n")

	fm, body, had, style, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, input, Join(fm, body, had, style))
}

func TestParse_EmptyInput_ReturnsEmptyMap(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	require.NotNil(t, fields)
	require.Empty(t, fields)
}

func TestSerialize_SortsKeysForStableOutput(t *testing.T) {
	fields := map[string]any{
		"weight": 10,
		"title":  "Adapter",
		"tags":   []string{"structural"},
	}

	out, err := Serialize(fields, Style{Newline: "\n"})
	require.NoError(t, err)
	require.Equal(t, "tags:\n  - structural\ntitle: Adapter\nweight: 10\n", string(out))
}

func TestEnsureUID_GeneratesOnlyWhenMissing(t *testing.T) {
	fields := map[string]any{"title": "Builder"}

	uid, changed, err := EnsureUID(fields)
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, ValidUID(uid))

	again, changed, err := EnsureUID(fields)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, uid, again)
}
