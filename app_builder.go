package engine3d

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: NewApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs the queued modules in the order they were added.
func (b *AppBuilder) Build() *App {
	app := b.app
	app.UseModules(b.modules...)
	b.modules = nil

	return app
}
