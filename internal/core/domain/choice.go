package domain

// ChoiceKind identifies what a choice points at.
type ChoiceKind int

// Choice kinds, in the order they appear in a choice list.
const (
	// ChoiceRepository is the inferred GitHub repository page.
	ChoiceRepository ChoiceKind = iota

	// ChoiceUser is the inferred GitHub user page.
	ChoiceUser

	// ChoicePages is the GitHub Pages site, observed or speculative.
	ChoicePages

	// ChoiceManifest is a URL extracted from a manifest field.
	ChoiceManifest

	// ChoiceRemote is the version-control remote URL.
	ChoiceRemote

	// ChoiceCancel is the sentinel entry that dismisses the prompt.
	ChoiceCancel
)

// Choice is one selectable entry offered to the user: a display label
// plus the URL it opens. The cancel sentinel carries no URL.
type Choice struct {
	// Label is the display text, numbered by final list position.
	Label string

	// URL is the value opened when this choice is selected.
	// Empty for the cancel sentinel.
	URL string

	// Kind identifies what the choice points at.
	Kind ChoiceKind

	// Field is the source field for ChoiceManifest entries,
	// empty otherwise.
	Field Field
}

// IsCancel returns true for the cancel sentinel.
func (c Choice) IsCancel() bool {
	return c.Kind == ChoiceCancel
}
