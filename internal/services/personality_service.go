package services

import (
	"sort"

	"caelio/internal/models/quiz_models"
	"caelio/pkg/utils"
)

type PersonalityServiceInterface interface {
	// ResolveDiscovery accepts either 3 (Q1-Q3) or 8 (Q1-Q8) answers and
	// returns the resolved profile.
	ResolveDiscovery(answers map[string]string) (quiz_models.Profile, error)
	ResolveProfessional(answers map[string]string) (quiz_models.ProfessionalProfile, error)
}

type PersonalityService struct{}

func NewPersonalityService() PersonalityServiceInterface {
	return &PersonalityService{}
}

func (s *PersonalityService) ResolveDiscovery(answers map[string]string) (quiz_models.Profile, error) {
	if len(answers) != 3 && len(answers) != 8 {
		return quiz_models.Profile{}, utils.ErrInvalidAnswerCount
	}

	scores := make(map[quiz_models.Group]int, len(quiz_models.AllGroups))
	for _, g := range quiz_models.AllGroups {
		scores[g] = 0
	}
	synthesizerScore := 0

	for qID, letter := range answers {
		question, ok := quiz_models.DiscoveryQuestionByID(qID)
		if !ok {
			return quiz_models.Profile{}, utils.ErrUnknownQuestion
		}
		choice, ok := question.Choices[letter]
		if !ok {
			return quiz_models.Profile{}, utils.ErrInvalidChoice
		}

		// A pure synthesizer choice carries no canonical group and only
		// feeds the counter.
		if quiz_models.IsCanonicalGroup(choice.Group) {
			scores[choice.Group]++
		}
		if choice.Synthesizer {
			synthesizerScore++
		}
	}

	return s.determineProfile(scores, synthesizerScore, answers), nil
}

func (s *PersonalityService) determineProfile(scores map[quiz_models.Group]int, synthesizerScore int, answers map[string]string) quiz_models.Profile {
	ranked := make([]quiz_models.Group, len(quiz_models.AllGroups))
	copy(ranked, quiz_models.AllGroups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	primary, secondary := ranked[0], ranked[1]
	primaryScore, secondaryScore := scores[primary], scores[secondary]

	// Raw-score tie between the top two: whichever group appears more often
	// among the Q1-Q3 "why" answers leads. Only the top two are re-ordered.
	if secondaryScore == primaryScore {
		whyCounts := s.countWhyAnswers(answers, primary, secondary)
		if whyCounts[secondary] > whyCounts[primary] {
			primary, secondary = secondary, primary
			primaryScore, secondaryScore = secondaryScore, primaryScore
		}
	}

	isSynthesizer := synthesizerScore >= 3 && abs(primaryScore-secondaryScore) <= 1

	profileName := string(primary)
	englishName := quiz_models.EnglishNames[primary]
	if isSynthesizer {
		profileName += quiz_models.SynthesizerSuffix
		englishName += quiz_models.SynthesizerSuffix
	}

	return quiz_models.Profile{
		PrimaryGroup:     primary,
		SecondaryGroup:   secondary,
		PrimaryScore:     primaryScore,
		SecondaryScore:   secondaryScore,
		SynthesizerScore: synthesizerScore,
		IsSynthesizer:    isSynthesizer,
		ProfileName:      profileName,
		EnglishName:      englishName,
		AllScores:        scores,
		IsMultiMotivated: abs(primaryScore-secondaryScore) <= 1,
	}
}

func (s *PersonalityService) countWhyAnswers(answers map[string]string, tied ...quiz_models.Group) map[quiz_models.Group]int {
	counts := make(map[quiz_models.Group]int, len(tied))
	for _, g := range tied {
		counts[g] = 0
	}
	for _, qID := range quiz_models.WhyQuestionIDs {
		letter, answered := answers[qID]
		if !answered {
			continue
		}
		question, ok := quiz_models.DiscoveryQuestionByID(qID)
		if !ok {
			continue
		}
		choice, ok := question.Choices[letter]
		if !ok {
			continue
		}
		if _, tracked := counts[choice.Group]; tracked {
			counts[choice.Group]++
		}
	}
	return counts
}

func (s *PersonalityService) ResolveProfessional(answers map[string]string) (quiz_models.ProfessionalProfile, error) {
	if len(answers) != len(quiz_models.ProfessionalQuestions) {
		return quiz_models.ProfessionalProfile{}, utils.ErrInvalidAnswerCount
	}

	chosen := make(map[string]quiz_models.ProfessionalChoice, len(answers))
	for qID, letter := range answers {
		question, ok := quiz_models.ProfessionalQuestionByID(qID)
		if !ok {
			return quiz_models.ProfessionalProfile{}, utils.ErrUnknownQuestion
		}
		choice, ok := question.Choices[letter]
		if !ok {
			return quiz_models.ProfessionalProfile{}, utils.ErrInvalidChoice
		}
		chosen[qID] = choice
	}

	// Two diagnostic choices flag synthesizer potential: self-directed
	// association on the learning-style question and cross-disciplinary
	// connection on the presentation question.
	indicators := 0
	if chosen["Q3"].SynthesizerPotential {
		indicators++
	}
	if chosen["Q4"].SynthesizerPotential {
		indicators++
	}

	return quiz_models.ProfessionalProfile{
		Field:                  chosen["Q1"].Field,
		Motivation:             chosen["Q2"].Motivation,
		LearningStyle:          chosen["Q3"].Style,
		PresentationPreference: chosen["Q4"].Presentation,
		SynthesizerIndicators:  indicators,
		IsSynthesizer:          indicators >= 2,
	}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
