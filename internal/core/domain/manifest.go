package domain

// FieldKind discriminates the shapes a manifest URL field can take.
// Manifest authors write these fields either as a plain string or as an
// object carrying a "url" property; anything else is treated as absent.
type FieldKind int

// Manifest field shapes.
const (
	// FieldAbsent means the field is missing or has an unusable shape.
	FieldAbsent FieldKind = iota

	// FieldString means the field is a plain string value.
	FieldString

	// FieldObject means the field is an object with a "url" property.
	FieldObject
)

// FieldValue is the tagged representation of a single manifest field.
// The zero value is an absent field.
type FieldValue struct {
	// Kind identifies which shape the field was written in.
	Kind FieldKind

	// Str holds the plain string value when Kind is FieldString.
	Str string

	// URL holds the object's "url" property when Kind is FieldObject.
	URL string
}

// StringField wraps a plain string value.
func StringField(s string) FieldValue {
	return FieldValue{Kind: FieldString, Str: s}
}

// ObjectField wraps an object-shaped value's url property.
func ObjectField(url string) FieldValue {
	return FieldValue{Kind: FieldObject, URL: url}
}

// IsAbsent returns true when the field carries no usable value.
// An object field with an empty url is as good as absent.
func (f FieldValue) IsAbsent() bool {
	switch f.Kind {
	case FieldString:
		return false
	case FieldObject:
		return f.URL == ""
	default:
		return true
	}
}

// Manifest holds the URL-bearing fields of a project manifest.
// Only the five fields the extractor knows about are represented;
// everything else in the file is ignored at the adapter boundary.
type Manifest struct {
	// Homepage is the project homepage field.
	Homepage FieldValue

	// Author is the package author field. As a plain string it commonly
	// follows the "Name <email> (https://url)" convention.
	Author FieldValue

	// Repository is the source repository field. Plain-string and
	// object forms often carry a git+ prefix and a .git suffix.
	Repository FieldValue

	// Bugs is the issue tracker field.
	Bugs FieldValue

	// Funding is the funding/sponsorship field.
	Funding FieldValue
}

// IsEmpty returns true when none of the known fields carries a value.
func (m Manifest) IsEmpty() bool {
	return m.Homepage.IsAbsent() &&
		m.Author.IsAbsent() &&
		m.Repository.IsAbsent() &&
		m.Bugs.IsAbsent() &&
		m.Funding.IsAbsent()
}
