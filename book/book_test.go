package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const tiger = "+f5-d6+c3-d3+c4-f4+f6-f3+e6-e7+d7-c5"

func TestLoad(t *testing.T) {
	t.Run("indexes every prefix up to ten plies", func(t *testing.T) {
		b, err := Load(strings.NewReader(tiger + "\n"))
		require.NoError(t, err)

		require.Equal(t, 10, b.Size())
		next, ok := b.Lookup("")
		require.True(t, ok)
		require.Equal(t, "+f5", next)

		next, ok = b.Lookup("+f5-d6+c3")
		require.True(t, ok)
		require.Equal(t, "-d3", next)

		next, ok = b.Lookup(tiger[:27])
		require.True(t, ok)
		require.Equal(t, "-e7", next)

		_, ok = b.Lookup(tiger[:30])
		require.False(t, ok, "Histories of ten plies are beyond the book")
	})

	t.Run("later lines overwrite earlier ones", func(t *testing.T) {
		b, err := Load(strings.NewReader("+f5-d6+c3\n+f5-d6+c5\n"))
		require.NoError(t, err)

		next, ok := b.Lookup("+f5-d6")
		require.True(t, ok)
		require.Equal(t, "+c5", next)
	})

	t.Run("stops at the first malformed token", func(t *testing.T) {
		b, err := Load(strings.NewReader("+f5-d6+c3 : +12\n"))
		require.NoError(t, err)

		require.Equal(t, 3, b.Size())
		_, ok := b.Lookup("+f5-d6+c3")
		require.False(t, ok)
	})

	t.Run("skips lines without moves", func(t *testing.T) {
		b, err := Load(strings.NewReader("# comment\n\n  \n+f5\nx\n"))
		require.NoError(t, err)

		require.Equal(t, 1, b.Lines())
		require.Equal(t, 2, b.Skipped())
		require.Equal(t, 1, b.Size())
	})

	t.Run("unknown history misses", func(t *testing.T) {
		b, err := Load(strings.NewReader(tiger))
		require.NoError(t, err)

		_, ok := b.Lookup("+a1")
		require.False(t, ok)
		_, ok = b.Lookup("+f5-d")
		require.False(t, ok, "Only whole tokens form keys")
	})
}

func TestDefault(t *testing.T) {
	b := Default()

	require.Equal(t, 26, b.Lines())
	require.Zero(t, b.Skipped())
	require.Equal(t, 188, b.Size())

	cases := map[string]string{
		"":                            "+d3",
		"+f5":                         "-f4",
		"+f5-d6":                      "+c4",
		"+f5-d6+c3":                   "-d3",
		"+f5-d6+c3-d3+c4-f4+f6-f3+e6": "-e7",
		"+d3-c3+c4-e3":                "+f4",
	}
	for prefix, want := range cases {
		got, ok := b.Lookup(prefix)
		require.True(t, ok, "Prefix %q should be in the book", prefix)
		require.Equal(t, want, got, "Prefix %q", prefix)
	}
}
