package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caelio/internal/models/book_models"
	"caelio/internal/models/quiz_models"
)

func TestScoreByKeywordsSurfaceWeights(t *testing.T) {
	keywords := []string{"lịch sử", "khoa học"}

	scored := scoreByKeywords([]book_models.Book{
		{ProductID: "cat", Category: "Lịch sử"},
		{ProductID: "title", Title: "Lịch sử thế giới"},
		{ProductID: "summary", Summary: "Một cuốn sách về lịch sử."},
		{ProductID: "content", Content: "bàn về lịch sử rất hay"},
	}, keywords)
	require.Len(t, scored, 4)

	byID := map[string]float64{}
	for _, rec := range scored {
		byID[rec.ProductID] = rec.PersonalityMatchScore
	}
	assert.InDelta(t, 3.0/2, byID["cat"], 1e-9)
	assert.InDelta(t, 2.0/2, byID["title"], 1e-9)
	assert.InDelta(t, 1.0/2, byID["summary"], 1e-9)
	assert.InDelta(t, 0.5/2, byID["content"], 1e-9)
}

func TestScoreByKeywordsAccumulatesAcrossSurfaces(t *testing.T) {
	scored := scoreByKeywords([]book_models.Book{
		{ProductID: "both", Category: "Khoa học", Title: "Khoa học vui"},
	}, []string{"khoa học"})
	require.Len(t, scored, 1)
	assert.InDelta(t, 3.0+2.0, scored[0].PersonalityMatchScore, 1e-9)
}

func TestScoreByKeywordsThreshold(t *testing.T) {
	// One content hit over a large lexicon stays under the threshold.
	keywords := make([]string, 20)
	for i := range keywords {
		keywords[i] = "zzz-không-khớp"
	}
	keywords[0] = "lịch sử"

	scored := scoreByKeywords([]book_models.Book{
		{ProductID: "weak", Content: "lịch sử"},
	}, keywords)
	assert.Empty(t, scored)
}

func TestPopularityBonus(t *testing.T) {
	assert.Equal(t, 0.0, popularityBonus(book_models.Book{}))

	full := book_models.Book{
		Quantity:    f64(20000),
		AvgRating:   f64(5),
		ReviewCount: f64(5000),
	}
	// All three bonuses saturate at their caps.
	assert.InDelta(t, 0.4, popularityBonus(full), 1e-9)

	partial := book_models.Book{Quantity: f64(5000)}
	assert.InDelta(t, 0.1, popularityBonus(partial), 1e-9)
}

func TestKeywordsForSynthesizerExtension(t *testing.T) {
	base := keywordsFor(quiz_models.Profile{PrimaryGroup: quiz_models.GroupTriThuc}, nil)
	extended := keywordsFor(quiz_models.Profile{
		PrimaryGroup:  quiz_models.GroupTriThuc,
		IsSynthesizer: true,
	}, nil)
	assert.Greater(t, len(extended), len(base))

	// Extras are deduplicated against the lexicon.
	withExtra := keywordsFor(quiz_models.Profile{PrimaryGroup: quiz_models.GroupTriThuc}, []string{"khoa học", "dược"})
	assert.Len(t, withExtra, len(base)+1)
}
