package engine3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type orderModule struct {
	name  string
	order *[]string
}

func (m orderModule) Install(app *App, commands *Commands) {
	*m.order = append(*m.order, m.name)
	commands.AddResources(&MockResource1{name: m.name})
}

func TestAppBuilder_UseModule(t *testing.T) {
	mod := &MockModule{}
	builder := NewAppBuilder().UseModule(mod)

	if mod.installed {
		t.Errorf("Module should not be installed before Build")
	}

	app := builder.Build()

	if !mod.installed {
		t.Errorf("Expected module to be installed")
	}
	assert.Len(t, app.modules, 1)
}

func TestAppBuilder_InstallOrder(t *testing.T) {
	var order []string
	app := NewAppBuilder().
		UseModule(orderModule{name: "first", order: &order}).
		UseModule(&MockModule{}).
		Build()

	assert.Equal(t, []string{"first"}, order)
	r, ok := Resource[MockResource1](app)
	if assert.True(t, ok) {
		assert.Equal(t, "first", r.name)
	}
	assert.Len(t, app.stages, len(defaultStages))
}
