package observability

import (
	"context"
	"testing"

	"github.com/annel0/addon-builder/internal/addon"
	"github.com/annel0/addon-builder/internal/generator"
	"github.com/annel0/addon-builder/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTelemetry_Disabled(t *testing.T) {
	shutdown, err := InitTelemetry(context.Background(), "addon-builder", false)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracerProvider_RecordsGenerationSpans(t *testing.T) {
	ctx := context.Background()
	exp := tracetest.NewInMemoryExporter()
	tp, err := NewTracerProvider(ctx, "addon-builder-test", exp)
	require.NoError(t, err)

	m, err := generator.New(generator.Options{
		Name:   "Traced",
		Store:  store.NewMemoryStore(),
		Tracer: tp.Tracer("test"),
	})
	require.NoError(t, err)

	bad := addon.NewBlock("bad").SetHardness(-1)
	m.AddItem(addon.NewItem("gem"))
	m.AddBlock(bad)
	m.Initialize(ctx)
	_, err = m.Generate(ctx)
	require.Error(t, err)

	require.NoError(t, tp.ForceFlush(ctx))
	spans := exp.GetSpans()

	byName := make(map[string]tracetest.SpanStub)
	for _, s := range spans {
		byName[s.Name] = s
	}
	require.Contains(t, byName, "addon.initialize")
	require.Contains(t, byName, "addon.generate")
	require.Contains(t, byName, "addon.emit.item")
	require.Contains(t, byName, "addon.emit.block")

	assert.Equal(t, codes.Error, byName["addon.emit.block"].Status.Code, "ошибка сущности отмечается в спане")
	assert.Equal(t, codes.Error, byName["addon.generate"].Status.Code)
	assert.Equal(t, byName["addon.generate"].SpanContext.SpanID(), byName["addon.emit.item"].Parent.SpanID())

	serviceName, ok := byName["addon.generate"].Resource.Set().Value("service.name")
	require.True(t, ok)
	assert.Equal(t, "addon-builder-test", serviceName.AsString())

	require.NoError(t, tp.Shutdown(ctx))
}
