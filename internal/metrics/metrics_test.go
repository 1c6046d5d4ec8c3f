package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.FileWritten("item")
	c.FileWritten("item")
	c.IndexMerged("item_texture", true)
	c.IndexMerged("item_texture", false)
	c.EntityEmitted("block")
	c.ObserveGenerate(5 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.filesWritten.WithLabelValues("item")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.indexMerges.WithLabelValues("item_texture")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.indexFallbacks.WithLabelValues("item_texture")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.entitiesEmitted.WithLabelValues("block")))

	summary, err := c.Summary()
	require.NoError(t, err)
	assert.Contains(t, summary, "addon_files_written_total{item}=2")
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.FileWritten("item")
	c.IndexMerged("x", true)
	c.EntityEmitted("item")
	c.ObserveGenerate(time.Second)
	assert.Nil(t, c.Registry())

	summary, err := c.Summary()
	assert.NoError(t, err)
	assert.Empty(t, summary)
}

func TestCollector_IndependentRegistries(t *testing.T) {
	// Два коллектора не должны паниковать при регистрации
	a := NewCollector()
	b := NewCollector()
	assert.NotSame(t, a.Registry(), b.Registry())
}
