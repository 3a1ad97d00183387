package services

import (
	"fmt"

	"github.com/custodia-labs/repohome-cli/internal/core/domain"
)

// Choice label text.
const (
	labelRepository    = "GitHub repository"
	labelUser          = "GitHub user"
	labelPages         = "GitHub Pages"
	labelPagesUnproven = "GitHub Pages (Maybe Not Found)"
	labelRemote        = "git remote"
	labelCancel        = "Cancel"
)

// BuildChoices assembles the ordered choice list: inferred repository,
// inferred user, inferred Pages site, then each extracted URL in field
// order, then the cancel sentinel. The cancel entry is present only when
// at least one real choice exists. Labels are numbered by final position,
// 1-indexed.
func BuildChoices(urls domain.ExtractedURLs, inference domain.GitHubInference) []domain.Choice {
	var choices []domain.Choice

	if u := inference.RepositoryURL(); u != "" {
		choices = append(choices, domain.Choice{Label: labelRepository, URL: u, Kind: domain.ChoiceRepository})
	}
	if u := inference.UserURL(); u != "" {
		choices = append(choices, domain.Choice{Label: labelUser, URL: u, Kind: domain.ChoiceUser})
	}
	if u := inference.PagesURL; u != "" {
		label := labelPages
		if !inference.HasPages {
			label = labelPagesUnproven
		}
		choices = append(choices, domain.Choice{Label: label, URL: u, Kind: domain.ChoicePages})
	}

	for _, field := range domain.FieldOrder {
		u := urls.Get(field)
		if u == "" {
			continue
		}
		if field == domain.FieldGitRemote {
			choices = append(choices, domain.Choice{Label: labelRemote, URL: u, Kind: domain.ChoiceRemote, Field: field})
			continue
		}
		label := fmt.Sprintf("%s (package.json)", field)
		choices = append(choices, domain.Choice{Label: label, URL: u, Kind: domain.ChoiceManifest, Field: field})
	}

	if len(choices) == 0 {
		return nil
	}
	choices = append(choices, domain.Choice{Label: labelCancel, Kind: domain.ChoiceCancel})

	for i := range choices {
		choices[i].Label = fmt.Sprintf("%d. %s", i+1, choices[i].Label)
	}
	return choices
}
