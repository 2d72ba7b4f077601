package services

import (
	"strings"

	"caelio/internal/models/book_models"
	"caelio/internal/models/quiz_models"
)

// Keyword-strategy weights per text surface, in decreasing order of trust.
const (
	weightCategory = 3.0
	weightTitle    = 2.0
	weightSummary  = 1.0
	weightContent  = 0.5
)

// Bounded popularity bonuses layered on the keyword score. A missing
// numeric means no bonus, not a zero-valued one.
const (
	bonusQuantityMax   = 0.2
	bonusRatingMax     = 0.1
	bonusReviewMax     = 0.1
	quantityScale      = 10000.0
	reviewScale        = 1000.0
	inclusionThreshold = 0.05
)

// keywordsFor builds the keyword list for a profile: the primary group's
// lexicon, the synthesizer extension when the trait is active, and any extra
// terms (the professional flow unions in its field lexicon).
func keywordsFor(profile quiz_models.Profile, extra []string) []string {
	base := groupKeywords[profile.PrimaryGroup]
	keywords := make([]string, 0, len(base)+len(synthesizerKeywords)+len(extra))
	keywords = append(keywords, base...)
	if profile.IsSynthesizer {
		keywords = append(keywords, synthesizerKeywords...)
	}
	seen := make(map[string]bool, len(keywords)+len(extra))
	for _, k := range keywords {
		seen[k] = true
	}
	for _, k := range extra {
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// scoreByKeywords ranks the catalog by weighted keyword hits over four text
// surfaces plus popularity bonuses. Books below the inclusion threshold are
// dropped, which bounds result size on sparse profiles.
func scoreByKeywords(catalog []book_models.Book, keywords []string) []book_models.Recommendation {
	if len(keywords) == 0 {
		return nil
	}
	total := float64(len(keywords))

	scored := make([]book_models.Recommendation, 0, len(catalog))
	for _, book := range catalog {
		surfaces := []struct {
			text   string
			weight float64
		}{
			{strings.ToLower(book.Category), weightCategory},
			{strings.ToLower(book.Title), weightTitle},
			{strings.ToLower(book.Summary), weightSummary},
			{strings.ToLower(book.Content), weightContent},
		}

		score := 0.0
		for _, keyword := range keywords {
			for _, surface := range surfaces {
				if surface.text == "" {
					continue
				}
				if strings.Contains(surface.text, keyword) {
					score += surface.weight / total
				}
			}
		}

		score += popularityBonus(book)

		if score > inclusionThreshold {
			scored = append(scored, book_models.Recommendation{Book: book, PersonalityMatchScore: score})
		}
	}
	return scored
}

func popularityBonus(book book_models.Book) float64 {
	bonus := 0.0
	if book.Quantity != nil {
		ratio := *book.Quantity / quantityScale
		if ratio > 1 {
			ratio = 1
		}
		bonus += ratio * bonusQuantityMax
	}
	if book.AvgRating != nil {
		bonus += *book.AvgRating / 5.0 * bonusRatingMax
	}
	if book.ReviewCount != nil {
		ratio := *book.ReviewCount / reviewScale
		if ratio > 1 {
			ratio = 1
		}
		bonus += ratio * bonusReviewMax
	}
	return bonus
}
