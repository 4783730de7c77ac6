package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type dep struct{}

func TestCheckInit(t *testing.T) {
	var nilPtr *dep
	var nilMap map[string]int
	t.Run("all set", func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("db", &dep{}, "name", "x", "count", 0)
		})
	})
	t.Run("nil values are reported together", func(t *testing.T) {
		err := Missing("db", nil, "store", nilPtr, "cache", nilMap, "ok", &dep{})
		require.EqualError(t, err, "dependencies not initialized: db, store, cache")
		require.PanicsWithValue(t, "dependencies not initialized: db", func() {
			CheckInit("db", nil)
		})
	})
	t.Run("malformed pairs", func(t *testing.T) {
		require.Error(t, Missing("db"))
		require.Error(t, Missing(1, &dep{}))
	})
}
