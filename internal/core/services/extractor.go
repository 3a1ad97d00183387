package services

import (
	"strings"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

// ExtractURLs pulls one normalised URL out of each known manifest field.
// Absent or malformed fields yield empty values; extraction of one field
// never affects another and never errors.
func ExtractURLs(m domain.Manifest) domain.ExtractedURLs {
	return domain.ExtractedURLs{
		Homepage:   extractField(m.Homepage),
		Author:     extractAuthor(m.Author),
		Repository: extractRepository(m.Repository),
		Bugs:       extractField(m.Bugs),
		Funding:    extractField(m.Funding),
	}
}

// extractField applies the generic rule: take a plain string verbatim or
// an object's url property, then strip the fragment and a .git suffix.
func extractField(f domain.FieldValue) string {
	switch f.Kind {
	case domain.FieldString:
		return normaliseURL(f.Str)
	case domain.FieldObject:
		return normaliseURL(f.URL)
	default:
		return ""
	}
}

// extractAuthor handles the "Name <email> (https://url)" convention used
// by plain-string author fields. Object-shaped authors follow the generic
// rule.
func extractAuthor(f domain.FieldValue) string {
	if f.Kind != domain.FieldString {
		return extractField(f)
	}
	if url, ok := parenthesizedURL(f.Str); ok {
		return normaliseURL(url)
	}
	return normaliseURL(f.Str)
}

// extractRepository applies the generic rule and then drops the git+
// scheme prefix common in repository fields.
func extractRepository(f domain.FieldValue) string {
	return strings.TrimPrefix(extractField(f), "git+")
}

// NormaliseRemoteURL normalises a collaborator-sourced version-control
// remote URL: the credentials part of the authority, the fragment and a
// trailing .git suffix are stripped. Whitespace-only input yields empty.
func NormaliseRemoteURL(raw string) string {
	s := normaliseURL(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	prefix, rest := "", s
	if i := strings.Index(s, "//"); i >= 0 {
		prefix, rest = s[:i+2], s[i+2:]
	}
	if at := strings.Index(rest, "@"); at >= 0 && !strings.Contains(rest[:at], "/") {
		rest = rest[at+1:]
	}
	return prefix + rest
}

// normaliseURL strips a trailing #fragment and a trailing .git suffix.
// It is applied to every extracted value.
func normaliseURL(s string) string {
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, ".git")
}

// parenthesizedURL finds the first "(http...)" substring and returns its
// content. A parenthesis that never closes does not count.
func parenthesizedURL(s string) (string, bool) {
	start := strings.Index(s, "(http")
	if start < 0 {
		return "", false
	}
	rest := s[start+1:]
	end := strings.Index(rest, ")")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
