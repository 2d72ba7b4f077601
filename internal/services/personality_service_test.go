package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caelio/internal/models/quiz_models"
	"caelio/pkg/utils"
)

func TestResolveDiscoveryFullJourney(t *testing.T) {
	svc := NewPersonalityService()

	profile, err := svc.ResolveDiscovery(map[string]string{
		"Q1": "C", "Q2": "D", "Q3": "E", "Q4": "C",
		"Q5": "B", "Q6": "E", "Q7": "C", "Q8": "C",
	})
	require.NoError(t, err)

	assert.Equal(t, quiz_models.GroupTriThuc, profile.PrimaryGroup)
	assert.Equal(t, 2, profile.PrimaryScore)
	assert.Equal(t, 4, profile.SynthesizerScore)
	assert.True(t, profile.IsSynthesizer)
	assert.Equal(t, "Tri thức–Synthesizer", profile.ProfileName)
	assert.Equal(t, "The Thinkers–Synthesizer", profile.EnglishName)
	assert.True(t, profile.IsMultiMotivated)
}

func TestResolveDiscoveryUniformAnswers(t *testing.T) {
	svc := NewPersonalityService()

	profile, err := svc.ResolveDiscovery(map[string]string{
		"Q1": "A", "Q2": "A", "Q3": "A", "Q4": "A",
		"Q5": "A", "Q6": "A", "Q7": "A", "Q8": "A",
	})
	require.NoError(t, err)

	assert.Equal(t, quiz_models.GroupKetNoi, profile.PrimaryGroup)
	assert.Equal(t, 7, profile.PrimaryScore)
	assert.Equal(t, 0, profile.SynthesizerScore)
	assert.False(t, profile.IsSynthesizer)
	assert.Equal(t, "Kết nối", profile.ProfileName)
	assert.False(t, profile.IsMultiMotivated)
}

func TestResolveDiscoveryAllScoresComplete(t *testing.T) {
	svc := NewPersonalityService()

	profile, err := svc.ResolveDiscovery(map[string]string{"Q1": "A", "Q2": "A", "Q3": "A"})
	require.NoError(t, err)

	require.Len(t, profile.AllScores, len(quiz_models.AllGroups))
	for _, g := range quiz_models.AllGroups {
		_, ok := profile.AllScores[g]
		assert.True(t, ok, "missing group %s", g)
	}
	assert.GreaterOrEqual(t, profile.PrimaryScore, profile.SecondaryScore)
}

func TestResolveDiscoveryShortJourney(t *testing.T) {
	svc := NewPersonalityService()

	profile, err := svc.ResolveDiscovery(map[string]string{"Q1": "C", "Q2": "C", "Q3": "C"})
	require.NoError(t, err)

	assert.Equal(t, quiz_models.GroupTriThuc, profile.PrimaryGroup)
	assert.Equal(t, 3, profile.PrimaryScore)
	assert.Equal(t, 0, profile.SynthesizerScore)
	assert.False(t, profile.IsSynthesizer)
}

func TestResolveDiscoveryTieBreakByWhyAnswers(t *testing.T) {
	svc := NewPersonalityService()

	// Tri thức and Tự do land on 2 points each, but both Tri thức points
	// come from the motivation questions, so Tri thức takes primary.
	profile, err := svc.ResolveDiscovery(map[string]string{
		"Q1": "C", "Q2": "C", "Q3": "E", "Q4": "B",
		"Q5": "B", "Q6": "D", "Q7": "D", "Q8": "A",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, profile.PrimaryScore)
	assert.Equal(t, 2, profile.SecondaryScore)
	assert.Equal(t, quiz_models.GroupTriThuc, profile.PrimaryGroup)
	assert.Equal(t, quiz_models.GroupTuDo, profile.SecondaryGroup)
}

func TestResolveDiscoveryTieWithoutDominanceKeepsOrder(t *testing.T) {
	svc := NewPersonalityService()

	// Kết nối and Tự do tie at 1 with one why-answer each: no swap, the
	// canonical ordering stands.
	profile, err := svc.ResolveDiscovery(map[string]string{"Q1": "A", "Q2": "B", "Q3": "E"})
	require.NoError(t, err)

	assert.Equal(t, quiz_models.GroupKetNoi, profile.PrimaryGroup)
	assert.Equal(t, quiz_models.GroupTuDo, profile.SecondaryGroup)
}

func TestResolveDiscoverySynthesizerBoundaries(t *testing.T) {
	svc := NewPersonalityService()

	// 3 synthesizer picks, score gap 1: trait activates.
	profile, err := svc.ResolveDiscovery(map[string]string{
		"Q1": "A", "Q2": "A", "Q3": "E", "Q4": "A",
		"Q5": "C", "Q6": "E", "Q7": "C", "Q8": "B",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, profile.SynthesizerScore)
	assert.Equal(t, 1, profile.PrimaryScore-profile.SecondaryScore)
	assert.True(t, profile.IsSynthesizer)

	// 2 synthesizer picks: never activates regardless of the gap.
	profile, err = svc.ResolveDiscovery(map[string]string{
		"Q1": "A", "Q2": "A", "Q3": "E", "Q4": "A",
		"Q5": "C", "Q6": "A", "Q7": "C", "Q8": "B",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, profile.SynthesizerScore)
	assert.False(t, profile.IsSynthesizer)

	// 3 synthesizer picks but a dominant primary (gap 2): stays off.
	profile, err = svc.ResolveDiscovery(map[string]string{
		"Q1": "C", "Q2": "C", "Q3": "E", "Q4": "C",
		"Q5": "C", "Q6": "C", "Q7": "B", "Q8": "A",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, profile.SynthesizerScore)
	assert.Equal(t, 2, profile.PrimaryScore-profile.SecondaryScore)
	assert.False(t, profile.IsSynthesizer)
}

func TestResolveDiscoveryIdempotent(t *testing.T) {
	svc := NewPersonalityService()
	answers := map[string]string{
		"Q1": "C", "Q2": "D", "Q3": "E", "Q4": "C",
		"Q5": "B", "Q6": "E", "Q7": "C", "Q8": "C",
	}

	first, err := svc.ResolveDiscovery(answers)
	require.NoError(t, err)
	second, err := svc.ResolveDiscovery(answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveDiscoveryErrors(t *testing.T) {
	svc := NewPersonalityService()

	_, err := svc.ResolveDiscovery(map[string]string{"Q1": "A"})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswerCount)

	_, err = svc.ResolveDiscovery(map[string]string{"Q1": "A", "Q2": "A", "Q3": "A", "Q4": "A"})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswerCount)

	_, err = svc.ResolveDiscovery(map[string]string{"Q1": "A", "Q2": "A", "Q9": "A"})
	assert.ErrorIs(t, err, utils.ErrUnknownQuestion)

	_, err = svc.ResolveDiscovery(map[string]string{"Q1": "Z", "Q2": "A", "Q3": "A"})
	assert.ErrorIs(t, err, utils.ErrInvalidChoice)
}

func TestResolveProfessional(t *testing.T) {
	svc := NewPersonalityService()

	professional, err := svc.ResolveProfessional(map[string]string{
		"Q1": "D", "Q2": "C", "Q3": "B", "Q4": "C",
	})
	require.NoError(t, err)

	assert.Equal(t, quiz_models.FieldTechnology, professional.Field)
	assert.Equal(t, quiz_models.MotivationExploratory, professional.Motivation)
	assert.Equal(t, quiz_models.StyleIntegrative, professional.LearningStyle)
	assert.Equal(t, quiz_models.PresentationIntegrative, professional.PresentationPreference)
	assert.Equal(t, 2, professional.SynthesizerIndicators)
	assert.True(t, professional.IsSynthesizer)
	assert.Equal(t, quiz_models.GroupTriThuc, professional.BorrowedGroup())
}

func TestResolveProfessionalSingleIndicator(t *testing.T) {
	svc := NewPersonalityService()

	professional, err := svc.ResolveProfessional(map[string]string{
		"Q1": "A", "Q2": "B", "Q3": "B", "Q4": "A",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, professional.SynthesizerIndicators)
	assert.False(t, professional.IsSynthesizer)
	assert.Equal(t, quiz_models.GroupChinhPhuc, professional.BorrowedGroup())
}

func TestResolveProfessionalErrors(t *testing.T) {
	svc := NewPersonalityService()

	_, err := svc.ResolveProfessional(map[string]string{"Q1": "A", "Q2": "A"})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswerCount)

	_, err = svc.ResolveProfessional(map[string]string{"Q1": "A", "Q2": "A", "Q3": "A", "Q5": "A"})
	assert.ErrorIs(t, err, utils.ErrUnknownQuestion)

	_, err = svc.ResolveProfessional(map[string]string{"Q1": "A", "Q2": "A", "Q3": "C", "Q4": "A"})
	assert.ErrorIs(t, err, utils.ErrInvalidChoice)
}
