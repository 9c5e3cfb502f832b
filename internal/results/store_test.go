package results_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/scdiff/internal/results"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := results.NewStore(filepath.Join(dir, "out", "results.yaml"))
	require.NoError(t, err)

	records := []results.Record{
		{
			PathA:      "a.ysc",
			PathB:      "b.ysc",
			Similarity: 1.0,
			Matches:    []results.MatchEntry{{Left: "off", Right: "off2", Labels: []string{"initial", "state"}}},
		},
	}

	require.NoError(t, store.SaveAll(records))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a.ysc", loaded[0].PathA)
	assert.Equal(t, 1.0, loaded[0].Similarity)
	assert.Equal(t, []string{"initial", "state"}, loaded[0].Matches[0].Labels)
}
