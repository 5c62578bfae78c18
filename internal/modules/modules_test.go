package modules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamercad/clickops/internal/types"
)

type fakeModule struct {
	name string
}

func (f fakeModule) Name() string                              { return f.name }
func (f fakeModule) Validate(types.QueryDefinition) error      { return nil }
func (f fakeModule) Run(context.Context, Catalog, types.QueryDefinition) types.ModuleResult {
	return types.ModuleResult{Module: f.name}
}

func TestRegistry(t *testing.T) {
	Register(fakeModule{name: "zz_fake"})
	Register(fakeModule{name: "aa_fake"})

	m, ok := Get("zz_fake")
	require.True(t, ok)
	assert.Equal(t, "zz_fake", m.Name())

	_, ok = Get("never_registered")
	assert.False(t, ok)

	names := Names()
	assert.Contains(t, names, "aa_fake")
	assert.Contains(t, names, "zz_fake")
	assert.IsIncreasing(t, names)
}
