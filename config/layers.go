package config

// Render layers for ecs.AddRenderer. Untyped so the config package stays
// free of ebitengine imports.
const (
	Default = iota
	Overlay
)
