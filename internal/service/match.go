package service

import (
	"sort"
	"strings"

	"github.com/foodplanner/backend/internal/models"
)

// RecipeWithIngredients pairs a catalog recipe with its ingredient names,
// already loaded from the store.
type RecipeWithIngredients struct {
	Recipe      models.Recipe
	Ingredients []string
}

// Suggestion is a scored recipe match. It is derived per request and never
// persisted.
type Suggestion struct {
	ID                  uint     `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	PreparationTime     int      `json:"preparation_time"`
	CookingTime         int      `json:"cooking_time"`
	Servings            int      `json:"servings"`
	Difficulty          string   `json:"difficulty"`
	ImageURL            string   `json:"image_url"`
	MatchPercentage     float64  `json:"match_percentage"`
	MatchingIngredients []string `json:"matching_ingredients"`
	MissingIngredients  []string `json:"missing_ingredients"`

	matchCount int
	totalCount int
}

// SuggestByThreshold scores every recipe in the catalog against the user's
// ingredient set and keeps those whose match percentage meets the threshold.
// Comparison is case-insensitive. Recipes without ingredient records are
// skipped (their ratio is undefined). Results are ordered by match percentage
// descending; ties break on recipe ID ascending so the order is deterministic.
func SuggestByThreshold(userIngredients []string, catalog []RecipeWithIngredients, threshold float64) []Suggestion {
	suggestions := []Suggestion{}
	if len(userIngredients) == 0 {
		return suggestions
	}

	have := normalizeSet(userIngredients)
	for _, entry := range catalog {
		s, ok := score(entry, have)
		if !ok {
			continue
		}
		if s.MatchPercentage >= threshold {
			suggestions = append(suggestions, s)
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].MatchPercentage != suggestions[j].MatchPercentage {
			return suggestions[i].MatchPercentage > suggestions[j].MatchPercentage
		}
		return suggestions[i].ID < suggestions[j].ID
	})
	return suggestions
}

// maxChatSuggestions caps the match-count ranking mode.
const maxChatSuggestions = 5

// SuggestByMatchCount ranks recipes by the absolute number of overlapping
// ingredients, ignoring any percentage threshold. It keeps at most five
// recipes with at least one match, ordered by match count descending, then
// total recipe ingredient count ascending (fewer missing items first), then
// recipe ID ascending.
func SuggestByMatchCount(ingredients []string, catalog []RecipeWithIngredients) []Suggestion {
	suggestions := []Suggestion{}
	if len(ingredients) == 0 {
		return suggestions
	}

	have := normalizeSet(ingredients)
	for _, entry := range catalog {
		s, ok := score(entry, have)
		if !ok || s.matchCount == 0 {
			continue
		}
		suggestions = append(suggestions, s)
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].matchCount != suggestions[j].matchCount {
			return suggestions[i].matchCount > suggestions[j].matchCount
		}
		if suggestions[i].totalCount != suggestions[j].totalCount {
			return suggestions[i].totalCount < suggestions[j].totalCount
		}
		return suggestions[i].ID < suggestions[j].ID
	})

	if len(suggestions) > maxChatSuggestions {
		suggestions = suggestions[:maxChatSuggestions]
	}
	return suggestions
}

// score computes the overlap between one recipe and the user's normalized
// ingredient set. Returns ok=false for recipes without ingredient records.
func score(entry RecipeWithIngredients, have map[string]struct{}) (Suggestion, bool) {
	if len(entry.Ingredients) == 0 {
		return Suggestion{}, false
	}

	matching := []string{}
	missing := []string{}
	for _, name := range entry.Ingredients {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, ok := have[normalized]; ok {
			matching = append(matching, normalized)
		} else {
			missing = append(missing, normalized)
		}
	}

	r := entry.Recipe
	return Suggestion{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		PreparationTime:     r.PreparationTime,
		CookingTime:         r.CookingTime,
		Servings:            r.Servings,
		Difficulty:          r.Difficulty,
		ImageURL:            r.ImageURL,
		MatchPercentage:     float64(len(matching)) / float64(len(entry.Ingredients)),
		MatchingIngredients: matching,
		MissingIngredients:  missing,
		matchCount:          len(matching),
		totalCount:          len(entry.Ingredients),
	}, true
}

func normalizeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}
