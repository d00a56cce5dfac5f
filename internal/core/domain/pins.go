package domain

const (
	// ReactVersion is the exact React version the frontend is pinned to.
	ReactVersion = "18.3.1"

	// TypesReactRange is the version range forced for @types/react.
	TypesReactRange = "^18.2.45"

	// TypesReactDOMRange is the version range forced for @types/react-dom.
	TypesReactDOMRange = "^18.2.18"
)

// Manifest fields that receive pins.
const (
	FieldDependencies = "dependencies"
	FieldResolutions  = "resolutions"
	FieldOverrides    = "overrides"
)

// Pin forces a package to a version inside one manifest field.
type Pin struct {
	Field   string
	Package string
	Version string
}

// ManifestPins returns the pins applied to the frontend manifest, in order.
func ManifestPins() []Pin {
	return []Pin{
		{Field: FieldDependencies, Package: "react", Version: ReactVersion},
		{Field: FieldDependencies, Package: "react-dom", Version: ReactVersion},
		{Field: FieldResolutions, Package: "react", Version: ReactVersion},
		{Field: FieldResolutions, Package: "react-dom", Version: ReactVersion},
		{Field: FieldResolutions, Package: "@types/react", Version: TypesReactRange},
		{Field: FieldResolutions, Package: "@types/react-dom", Version: TypesReactDOMRange},
		{Field: FieldOverrides, Package: "react", Version: ReactVersion},
		{Field: FieldOverrides, Package: "react-dom", Version: ReactVersion},
	}
}
