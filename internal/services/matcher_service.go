package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"caelio/internal/models/book_models"
	"caelio/internal/models/quiz_models"
	"caelio/internal/repositories"
	"caelio/pkg/utils"
)

// MatchStrategy selects how books are scored against a profile.
type MatchStrategy string

const (
	// StrategyCategory ranks by fuzzy category matching (the canonical path).
	StrategyCategory MatchStrategy = "category"
	// StrategyKeyword ranks by weighted free-text keyword hits.
	StrategyKeyword MatchStrategy = "keyword"
)

// Match score constants for the category strategy. The floor is the lowest
// score a matched book can carry; unmatched books are excluded entirely.
const (
	scorePerfect        = 1.0
	scoreBaseExact      = 0.9
	scoreOtherExact     = 0.8
	scoreSynthSubstring = 0.8
	scoreBaseSubstring  = 0.7
	scoreOtherSubstring = 0.6
	scoreSynthAlias     = 0.6
	scoreBaseAlias      = 0.5
	scoreOtherAlias     = 0.4
	scoreFloor          = 0.1
)

// DefaultTopN bounds result lists when the caller does not ask otherwise.
const DefaultTopN = 20

type MatchResult struct {
	Recommendations   []book_models.Recommendation
	TotalMatches      int
	MatchDistribution map[string]int
}

type MatcherServiceInterface interface {
	Recommend(ctx context.Context, profile quiz_models.Profile, topN int, strategy MatchStrategy) (MatchResult, error)
	RecommendProfessional(ctx context.Context, professional quiz_models.ProfessionalProfile, topN int) (MatchResult, error)
}

type MatcherService struct {
	bookRepository     repositories.BookRepositoryInterface
	personalityService PersonalityServiceInterface
}

func NewMatcherService(
	bookRepository repositories.BookRepositoryInterface,
	personalityService PersonalityServiceInterface,
) MatcherServiceInterface {
	return &MatcherService{
		bookRepository:     bookRepository,
		personalityService: personalityService,
	}
}

func (m *MatcherService) Recommend(ctx context.Context, profile quiz_models.Profile, topN int, strategy MatchStrategy) (MatchResult, error) {
	if topN <= 0 {
		return MatchResult{}, utils.ErrInvalidTopN
	}
	if _, ok := categoryMap[profile.PrimaryGroup]; !ok {
		return MatchResult{}, utils.ErrUnknownGroup
	}

	catalog, err := m.bookRepository.LoadCatalog(ctx)
	if err != nil {
		return MatchResult{}, err
	}

	var scored []book_models.Recommendation
	switch strategy {
	case StrategyKeyword:
		scored = scoreByKeywords(catalog, keywordsFor(profile, nil))
	default:
		scored = m.scoreByCategories(catalog, profile)
	}

	return finishRanking(scored, topN), nil
}

// scoreByCategories implements the category-fuzzy strategy: a book matches
// when its category equals, contains or is contained by a target category,
// or when the alias table links the two semantic families.
func (m *MatcherService) scoreByCategories(catalog []book_models.Book, profile quiz_models.Profile) []book_models.Recommendation {
	categories := categoryMap[profile.PrimaryGroup]
	targets := categories.Base
	if profile.IsSynthesizer {
		targets = append(append([]string{}, categories.Base...), categories.Synthesizer...)
	}

	synthSet := make(map[string]bool, len(categories.Synthesizer))
	for _, c := range categories.Synthesizer {
		synthSet[strings.ToLower(c)] = true
	}
	baseSet := make(map[string]bool, len(categories.Base))
	for _, c := range categories.Base {
		baseSet[strings.ToLower(c)] = true
	}

	scored := make([]book_models.Recommendation, 0, len(catalog))
	for _, book := range catalog {
		if book.Category == "" {
			continue
		}
		actual := strings.ToLower(book.Category)

		score := 0.0
		for _, target := range targets {
			targetLower := strings.ToLower(target)
			tier := matchTier(actual, targetLower)
			if tier == tierNone {
				continue
			}
			s := tierScore(tier, synthSet[targetLower] && profile.IsSynthesizer, baseSet[targetLower])
			if s > score {
				score = s
			}
		}
		if score == 0 {
			continue
		}
		if score < scoreFloor {
			score = scoreFloor
		}
		scored = append(scored, book_models.Recommendation{Book: book, PersonalityMatchScore: score})
	}
	return scored
}

type categoryTier int

const (
	tierNone categoryTier = iota
	tierAlias
	tierSubstring
	tierExact
)

func matchTier(actual, target string) categoryTier {
	switch {
	case actual == target:
		return tierExact
	case strings.Contains(actual, target) || strings.Contains(target, actual):
		return tierSubstring
	case aliasMatch(actual, target):
		return tierAlias
	default:
		return tierNone
	}
}

func tierScore(tier categoryTier, synthTarget, baseTarget bool) float64 {
	switch tier {
	case tierExact:
		if synthTarget {
			return scorePerfect
		}
		if baseTarget {
			return scoreBaseExact
		}
		return scoreOtherExact
	case tierSubstring:
		if synthTarget {
			return scoreSynthSubstring
		}
		if baseTarget {
			return scoreBaseSubstring
		}
		return scoreOtherSubstring
	case tierAlias:
		if synthTarget {
			return scoreSynthAlias
		}
		if baseTarget {
			return scoreBaseAlias
		}
		return scoreOtherAlias
	}
	return 0
}

// aliasMatch reports whether the book category belongs to the semantic
// family of the target category.
func aliasMatch(actual, target string) bool {
	for stem, related := range categoryAliases {
		if !strings.Contains(target, stem) {
			continue
		}
		for _, word := range related {
			if strings.Contains(actual, word) {
				return true
			}
		}
	}
	return false
}

// RecommendProfessional ranks with the keyword strategy over a deterministic
// default discovery profile, unions in the field lexicon, then keeps books
// matching the professional field. When the field filter leaves fewer than
// topN/2 books, the next-highest unfiltered books backfill the list.
func (m *MatcherService) RecommendProfessional(ctx context.Context, professional quiz_models.ProfessionalProfile, topN int) (MatchResult, error) {
	if topN <= 0 {
		return MatchResult{}, utils.ErrInvalidTopN
	}

	profile, err := m.personalityService.ResolveDiscovery(defaultDiscoveryAnswers())
	if err != nil {
		log.Printf("Error resolving default discovery profile: %v", err)
		return MatchResult{}, err
	}

	catalog, err := m.bookRepository.LoadCatalog(ctx)
	if err != nil {
		return MatchResult{}, err
	}

	extra := fieldKeywords[professional.Field]
	scored := scoreByKeywords(catalog, keywordsFor(profile, extra))
	ranked := finishRanking(scored, topN*2)

	words := fieldKeywords[professional.Field]
	filtered := make([]book_models.Recommendation, 0, topN)
	for _, rec := range ranked.Recommendations {
		if matchesField(rec.Book, words) {
			filtered = append(filtered, rec)
			if len(filtered) == topN {
				break
			}
		}
	}

	if len(filtered) < topN/2 {
		included := make(map[string]bool, len(filtered))
		for _, rec := range filtered {
			included[rec.ProductID] = true
		}
		for _, rec := range ranked.Recommendations {
			if len(filtered) >= topN {
				break
			}
			if included[rec.ProductID] {
				continue
			}
			included[rec.ProductID] = true
			filtered = append(filtered, rec)
		}
	}

	return MatchResult{
		Recommendations:   filtered,
		TotalMatches:      len(filtered),
		MatchDistribution: distribution(filtered),
	}, nil
}

// defaultDiscoveryAnswers is the deterministic backfill answer set used when
// no discovery answers exist: the first choice of every question.
func defaultDiscoveryAnswers() map[string]string {
	answers := make(map[string]string, len(quiz_models.DiscoveryQuestions))
	for _, q := range quiz_models.DiscoveryQuestions {
		answers[q.ID] = q.ChoiceOrder[0]
	}
	return answers
}

func matchesField(book book_models.Book, words []string) bool {
	category := strings.ToLower(book.Category)
	title := strings.ToLower(book.Title)
	summary := strings.ToLower(book.Summary)
	for _, w := range words {
		if strings.Contains(category, w) || strings.Contains(title, w) || strings.Contains(summary, w) {
			return true
		}
	}
	return false
}

// finishRanking sorts by score then sales quantity, truncates to topN and
// reports the pre-truncation match count plus the category histogram of all
// matched books.
func finishRanking(scored []book_models.Recommendation, topN int) MatchResult {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].PersonalityMatchScore != scored[j].PersonalityMatchScore {
			return scored[i].PersonalityMatchScore > scored[j].PersonalityMatchScore
		}
		return scored[i].QuantityOrZero() > scored[j].QuantityOrZero()
	})

	totalMatches := len(scored)
	dist := distribution(scored)

	if len(scored) > topN {
		scored = scored[:topN]
	}

	return MatchResult{
		Recommendations:   scored,
		TotalMatches:      totalMatches,
		MatchDistribution: dist,
	}
}

func distribution(recs []book_models.Recommendation) map[string]int {
	dist := make(map[string]int, len(recs))
	for _, rec := range recs {
		category := rec.Category
		if category == "" {
			category = "Unknown"
		}
		dist[category]++
	}
	return dist
}
