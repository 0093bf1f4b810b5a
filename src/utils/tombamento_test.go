package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTombamento(t *testing.T) {
	t.Run("plain integer is zero padded with prefix", func(t *testing.T) {
		require.Equal(t, "A000001", FormatTombamento("1", "A"))
		require.Equal(t, "INF000123", FormatTombamento("123", "INF"))
		require.Equal(t, "000042", FormatTombamento("42", ""))
	})

	t.Run("padding never truncates large values", func(t *testing.T) {
		require.Equal(t, "A1000000", FormatTombamento("1000000", "A"))
		require.Equal(t, "1234567890", FormatTombamento("1234567890", ""))
	})

	t.Run("free form codes pass through trimmed", func(t *testing.T) {
		require.Equal(t, "ABC-99", FormatTombamento("  ABC-99 ", "A"))
		require.Equal(t, "12x", FormatTombamento("12x", "A"))
		require.Equal(t, "-5", FormatTombamento("-5", "A"))
	})

	t.Run("only canonical decimals count as numbers", func(t *testing.T) {
		require.Equal(t, "007", FormatTombamento("007", "A"))
		require.Equal(t, "+5", FormatTombamento("+5", "A"))
		require.Equal(t, "01", FormatTombamento(" 01 ", ""))
		require.Equal(t, "A000000", FormatTombamento("0", "A"))
	})

	t.Run("every non negative integer gets at least six digits", func(t *testing.T) {
		for _, n := range []int{0, 7, 99, 4321, 99999, 100000, 999999, 1000001} {
			tag := FormatTombamento(fmt.Sprintf("%d", n), "U")
			require.GreaterOrEqual(t, len(tag), len("U")+6, "tag %q", tag)
		}
	})
}

func TestExpandLote(t *testing.T) {
	t.Run("expands inclusive range in order", func(t *testing.T) {
		tags, err := ExpandLote("$1-3", "A")
		require.NoError(t, err)
		require.Equal(t, []string{"A000001", "A000002", "A000003"}, tags)
	})

	t.Run("yields exactly fim-inicio+1 tags", func(t *testing.T) {
		tags, err := ExpandLote("$11-15", "")
		require.NoError(t, err)
		require.Len(t, tags, 5)
		require.Equal(t, "000011", tags[0])
		require.Equal(t, "000015", tags[4])
	})

	t.Run("maximum difference of 100 is allowed", func(t *testing.T) {
		tags, err := ExpandLote("$1-101", "")
		require.NoError(t, err)
		require.Len(t, tags, 101)
	})

	t.Run("rejects inicio greater or equal fim", func(t *testing.T) {
		_, err := ExpandLote("$5-5", "")
		require.Error(t, err)
		_, err = ExpandLote("$10-2", "")
		require.Error(t, err)
	})

	t.Run("rejects batches larger than the limit", func(t *testing.T) {
		_, err := ExpandLote("$1-102", "")
		require.Error(t, err)
	})

	t.Run("rejects malformed expressions", func(t *testing.T) {
		for _, raw := range []string{"$1-", "$-3", "$a-b", "1-3", "$1+3"} {
			_, err := ExpandLote(raw, "")
			require.Error(t, err, "raw %q", raw)
		}
	})
}

func TestIsLote(t *testing.T) {
	require.True(t, IsLote("$1-3"))
	require.True(t, IsLote(" $11-15 "))
	require.False(t, IsLote("123"))
	require.False(t, IsLote("$1-"))
	require.False(t, IsLote("ABC"))
}
