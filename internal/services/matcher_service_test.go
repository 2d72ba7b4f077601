package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caelio/internal/models/book_models"
	"caelio/internal/models/quiz_models"
	"caelio/pkg/utils"
)

type stubBookRepo struct {
	books []book_models.Book
	err   error
}

func (s *stubBookRepo) LoadCatalog(ctx context.Context) ([]book_models.Book, error) {
	return s.books, s.err
}

func f64(v float64) *float64 { return &v }

func thinkerProfile(synth bool) quiz_models.Profile {
	return quiz_models.Profile{
		PrimaryGroup:   quiz_models.GroupTriThuc,
		SecondaryGroup: quiz_models.GroupKetNoi,
		IsSynthesizer:  synth,
		AllScores: map[quiz_models.Group]int{
			quiz_models.GroupKetNoi: 1, quiz_models.GroupTuDo: 0,
			quiz_models.GroupTriThuc: 2, quiz_models.GroupChinhPhuc: 0,
			quiz_models.GroupKienTao: 0,
		},
	}
}

func TestRecommendCategoryTiers(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "1", Title: "Đại Việt sử ký", Category: "Lịch sử"},
		{ProductID: "2", Title: "Sử Việt kể chuyện", Category: "Lịch sử Việt Nam"},
		{ProductID: "3", Title: "Đắc nhân tâm", Category: "Tiểu thuyết tình cảm"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	result, err := svc.Recommend(context.Background(), thinkerProfile(false), 10, StrategyCategory)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)

	// Exact base category outranks the substring match; the off-group book
	// is excluded entirely.
	assert.Equal(t, "1", result.Recommendations[0].ProductID)
	assert.Equal(t, 0.9, result.Recommendations[0].PersonalityMatchScore)
	assert.Equal(t, "2", result.Recommendations[1].ProductID)
	assert.Equal(t, 0.7, result.Recommendations[1].PersonalityMatchScore)
}

func TestRecommendSynthesizerCategories(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "1", Category: "Triết học khoa học"},
		{ProductID: "2", Category: "Lịch sử"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	result, err := svc.Recommend(context.Background(), thinkerProfile(true), 10, StrategyCategory)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "1", result.Recommendations[0].ProductID)
	assert.Equal(t, 1.0, result.Recommendations[0].PersonalityMatchScore)
	assert.Equal(t, 0.9, result.Recommendations[1].PersonalityMatchScore)

	// Without the trait the synthesizer-only category is not a target.
	result, err = svc.Recommend(context.Background(), thinkerProfile(false), 10, StrategyCategory)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "2", result.Recommendations[0].ProductID)
}

func TestRecommendAliasMatch(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "1", Category: "Psychology"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	profile := thinkerProfile(false)
	profile.PrimaryGroup = quiz_models.GroupKetNoi

	result, err := svc.Recommend(context.Background(), profile, 10, StrategyCategory)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, 0.5, result.Recommendations[0].PersonalityMatchScore)
}

func TestRecommendQuantityTieBreak(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "slow", Category: "Lịch sử", Quantity: f64(50)},
		{ProductID: "fast", Category: "Lịch sử", Quantity: f64(500)},
		{ProductID: "none", Category: "Lịch sử"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	result, err := svc.Recommend(context.Background(), thinkerProfile(false), 10, StrategyCategory)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, "fast", result.Recommendations[0].ProductID)
	assert.Equal(t, "slow", result.Recommendations[1].ProductID)
	assert.Equal(t, "none", result.Recommendations[2].ProductID)
}

func TestRecommendTruncationAndTotals(t *testing.T) {
	books := make([]book_models.Book, 0, 30)
	for i := 0; i < 30; i++ {
		books = append(books, book_models.Book{
			ProductID: string(rune('a' + i)),
			Category:  "Lịch sử",
		})
	}
	svc := NewMatcherService(&stubBookRepo{books: books}, NewPersonalityService())

	result, err := svc.Recommend(context.Background(), thinkerProfile(false), 5, StrategyCategory)
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, 5)
	assert.Equal(t, 30, result.TotalMatches)
	assert.Equal(t, 30, result.MatchDistribution["Lịch sử"])
}

func TestRecommendSkipsMissingCategory(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "1", Category: ""},
		{ProductID: "2", Category: "Lịch sử"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	result, err := svc.Recommend(context.Background(), thinkerProfile(false), 10, StrategyCategory)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "2", result.Recommendations[0].ProductID)
}

func TestRecommendKeywordStrategyUnknownBucket(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "1", Title: "Lược sử khoa học"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	result, err := svc.Recommend(context.Background(), thinkerProfile(false), 10, StrategyKeyword)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, 1, result.MatchDistribution["Unknown"])
}

func TestRecommendErrors(t *testing.T) {
	svc := NewMatcherService(&stubBookRepo{}, NewPersonalityService())

	_, err := svc.Recommend(context.Background(), thinkerProfile(false), 0, StrategyCategory)
	assert.ErrorIs(t, err, utils.ErrInvalidTopN)

	profile := thinkerProfile(false)
	profile.PrimaryGroup = quiz_models.Group("Không tồn tại")
	_, err = svc.Recommend(context.Background(), profile, 10, StrategyCategory)
	assert.ErrorIs(t, err, utils.ErrUnknownGroup)

	failing := NewMatcherService(&stubBookRepo{err: utils.ErrCatalogUnavailable}, NewPersonalityService())
	_, err = failing.Recommend(context.Background(), thinkerProfile(false), 10, StrategyCategory)
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
}

func TestRecommendProfessionalFieldFilter(t *testing.T) {
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "biz", Title: "Khởi nghiệp tinh gọn", Category: "Khởi nghiệp"},
		{ProductID: "fam", Title: "Thương nhau để đó", Category: "Gia đình"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	professional := quiz_models.ProfessionalProfile{
		Field:                  quiz_models.FieldBusiness,
		Motivation:             quiz_models.MotivationPractical,
		LearningStyle:          quiz_models.StyleStructured,
		PresentationPreference: quiz_models.PresentationAnalytical,
	}

	result, err := svc.RecommendProfessional(context.Background(), professional, 1)
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "biz", result.Recommendations[0].ProductID)
}

func TestRecommendProfessionalBackfill(t *testing.T) {
	// Nothing matches the medical field, so the top keyword hits backfill.
	repo := &stubBookRepo{books: []book_models.Book{
		{ProductID: "fam", Title: "Thương nhau để đó", Category: "Gia đình"},
		{ProductID: "talk", Title: "Nghệ thuật giao tiếp", Category: "Giao tiếp"},
	}}
	svc := NewMatcherService(repo, NewPersonalityService())

	professional := quiz_models.ProfessionalProfile{
		Field: quiz_models.FieldMedical,
	}

	result, err := svc.RecommendProfessional(context.Background(), professional, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Recommendations)
	assert.Equal(t, len(result.Recommendations), result.TotalMatches)
}

func TestRecommendProfessionalInvalidTopN(t *testing.T) {
	svc := NewMatcherService(&stubBookRepo{}, NewPersonalityService())
	_, err := svc.RecommendProfessional(context.Background(), quiz_models.ProfessionalProfile{}, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidTopN)
}
