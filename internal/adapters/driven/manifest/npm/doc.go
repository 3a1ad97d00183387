// Package npm reads package.json manifests into the domain representation.
//
// The URL-bearing fields of a package.json are polymorphic: authors write
// them as plain strings or as objects with a "url" property, and real-world
// files contain every malformed variant in between. This adapter absorbs
// that shape tolerance so the core only ever sees tagged FieldValues.
// A field of any other shape (number, array, null) is treated as absent,
// never as an error.
package npm
