package domain

// Field names the sources a candidate URL can come from. Five manifest
// fields plus the version-control remote.
type Field string

// Known URL sources, in inference priority order.
const (
	// FieldHomepage is the manifest homepage field.
	FieldHomepage Field = "homepage"

	// FieldAuthor is the manifest author field.
	FieldAuthor Field = "author"

	// FieldRepository is the manifest repository field.
	FieldRepository Field = "repository"

	// FieldBugs is the manifest bugs (issue tracker) field.
	FieldBugs Field = "bugs"

	// FieldFunding is the manifest funding field.
	FieldFunding Field = "funding"

	// FieldGitRemote is the version-control remote URL, sourced from
	// git configuration rather than the manifest.
	FieldGitRemote Field = "gitRemoteUrl"
)

// FieldOrder is the fixed, deterministic order in which extracted URLs
// are iterated. Inference priority and choice listing both follow it.
var FieldOrder = []Field{
	FieldHomepage,
	FieldAuthor,
	FieldRepository,
	FieldBugs,
	FieldFunding,
	FieldGitRemote,
}

// ExtractedURLs maps each known field to its normalised URL.
// An empty string means the field yielded no URL. Built once per run
// and treated as immutable afterwards.
type ExtractedURLs struct {
	// Homepage is the normalised homepage URL.
	Homepage string

	// Author is the normalised author URL.
	Author string

	// Repository is the normalised repository URL.
	Repository string

	// Bugs is the normalised issue tracker URL.
	Bugs string

	// Funding is the normalised funding URL.
	Funding string

	// GitRemote is the normalised version-control remote URL.
	GitRemote string
}

// Get returns the URL extracted for the given field, or empty.
func (e ExtractedURLs) Get(field Field) string {
	switch field {
	case FieldHomepage:
		return e.Homepage
	case FieldAuthor:
		return e.Author
	case FieldRepository:
		return e.Repository
	case FieldBugs:
		return e.Bugs
	case FieldFunding:
		return e.Funding
	case FieldGitRemote:
		return e.GitRemote
	default:
		return ""
	}
}

// IsEmpty returns true when no field yielded a URL.
func (e ExtractedURLs) IsEmpty() bool {
	for _, f := range FieldOrder {
		if e.Get(f) != "" {
			return false
		}
	}
	return true
}
