package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustSeq parses the numeric part of a generated edge ID ("e12" -> 12).
func mustSeq(t *testing.T, eid string) int {
	t.Helper()
	require.NotEmpty(t, eid)
	require.Equal(t, byte('e'), eid[0], "edge ID %q lacks prefix", eid)
	n, err := strconv.Atoi(eid[1:])
	require.NoError(t, err)

	return n
}
