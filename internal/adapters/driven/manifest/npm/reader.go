package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
	"github.com/custodia-labs/repohome-cli/internal/core/ports/driven"
)

// ManifestFile is the manifest file name looked up in the project directory.
const ManifestFile = "package.json"

// Ensure Source implements the interface.
var _ driven.ManifestSource = (*Source)(nil)

// Source loads package.json manifests from disk.
type Source struct{}

// NewSource creates a package.json manifest source.
func NewSource() *Source {
	return &Source{}
}

// Load reads the manifest for the given project directory. A missing,
// unreadable, or malformed file yields an empty manifest together with
// domain.ErrNoManifest; individual field weirdness never errors.
func (s *Source) Load(ctx context.Context, dir string) (domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Manifest{}, err
	}

	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrNoManifest, path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Manifest{}, fmt.Errorf("%w: %s is not valid JSON", domain.ErrNoManifest, path)
	}

	return domain.Manifest{
		Homepage:   doc.Homepage.value(),
		Author:     doc.Author.value(),
		Repository: doc.Repository.value(),
		Bugs:       doc.Bugs.value(),
		Funding:    doc.Funding.value(),
	}, nil
}

// document mirrors the URL-bearing subset of package.json.
type document struct {
	Homepage   field `json:"homepage"`
	Author     field `json:"author"`
	Repository field `json:"repository"`
	Bugs       field `json:"bugs"`
	Funding    field `json:"funding"`
}

// field tolerates the string-or-object shapes of manifest URL fields.
type field struct {
	str    string
	url    string
	kind   domain.FieldKind
	absent bool
}

// UnmarshalJSON accepts a plain string or an object with a "url" string
// property. Any other shape leaves the field absent.
func (f *field) UnmarshalJSON(data []byte) error {
	// JSON null unmarshals into a string without error; catch it first.
	if string(data) == "null" {
		f.absent = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.kind = domain.FieldString
		f.str = s
		return nil
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.URL != "" {
		f.kind = domain.FieldObject
		f.url = obj.URL
		return nil
	}

	f.absent = true
	return nil
}

func (f field) value() domain.FieldValue {
	switch f.kind {
	case domain.FieldString:
		return domain.StringField(f.str)
	case domain.FieldObject:
		return domain.ObjectField(f.url)
	default:
		return domain.FieldValue{}
	}
}
