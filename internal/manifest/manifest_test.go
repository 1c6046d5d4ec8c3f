package manifest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPair_DependencyLink(t *testing.T) {
	b := NewBuilder()

	res := b.BuildResource("My Addon", "desc")
	bhv, err := b.BuildBehaviour("My Addon", "desc", res)
	require.NoError(t, err)

	assert.Equal(t, "My Addon Resources", res.Header.Name)
	assert.Equal(t, "My Addon Behaviour", bhv.Header.Name)
	assert.Equal(t, ModuleTypeResources, res.Modules[0].Type)
	assert.Equal(t, ModuleTypeData, bhv.Modules[0].Type)

	require.Len(t, bhv.Dependencies, 1)
	assert.Equal(t, res.Header.UUID, bhv.Dependencies[0].UUID)
	assert.Equal(t, res.Header.Version, bhv.Dependencies[0].Version)
	assert.True(t, bhv.DependsOn(res))
	assert.Empty(t, res.Dependencies)

	ids := map[uuid.UUID]bool{
		res.Header.UUID:     true,
		res.Modules[0].UUID: true,
		bhv.Header.UUID:     true,
		bhv.Modules[0].UUID: true,
	}
	assert.Len(t, ids, 4, "все четыре UUID должны быть различны")
}

func TestBuildBehaviour_RequiresResource(t *testing.T) {
	_, err := NewBuilder().BuildBehaviour("x", "y", Manifest{})
	assert.True(t, errors.Is(err, ErrResourceNotBuilt))
}

func TestManifest_JSONShape(t *testing.T) {
	b := NewBuilder()
	res := b.BuildResource("Pack", "d")
	bhv, err := b.BuildBehaviour("Pack", "d", res)
	require.NoError(t, err)

	var raw map[string]interface{}
	data, err := json.Marshal(res)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(2), raw["format_version"])
	assert.NotContains(t, raw, "dependencies", "у resource pack нет зависимостей")

	header := raw["header"].(map[string]interface{})
	assert.Equal(t, []interface{}{float64(1), float64(0), float64(0)}, header["version"])
	assert.Equal(t, []interface{}{float64(1), float64(16), float64(0)}, header["min_engine_version"])
	assert.Equal(t, res.Header.UUID.String(), header["uuid"])

	data, err = json.Marshal(bhv)
	require.NoError(t, err)
	var decoded Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.DependsOn(res), "связь должна переживать сериализацию")
}

func TestStableBuilder_Deterministic(t *testing.T) {
	a := NewStableBuilder("my_addon")
	b := NewStableBuilder("my_addon")
	c := NewStableBuilder("other")

	resA := a.BuildResource("A", "d")
	resB := b.BuildResource("A", "d")
	resC := c.BuildResource("A", "d")

	assert.Equal(t, resA.Header.UUID, resB.Header.UUID)
	assert.Equal(t, resA.Modules[0].UUID, resB.Modules[0].UUID)
	assert.NotEqual(t, resA.Header.UUID, resA.Modules[0].UUID)
	assert.NotEqual(t, resA.Header.UUID, resC.Header.UUID)
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "1.16.0", MinEngineVersion.String())
}
