package pressure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valves/pressure"
)

func TestSet(t *testing.T) {
	var s pressure.Set
	require.Zero(t, s.Len())
	s = s.With(0).With(5).With(pressure.MaxValuable - 1)
	require.True(t, s.Has(0))
	require.True(t, s.Has(5))
	require.True(t, s.Has(pressure.MaxValuable-1))
	require.False(t, s.Has(1))
	require.Equal(t, 3, s.Len())
	require.Equal(t, s, s.With(5), "adding twice is a no-op")
}
