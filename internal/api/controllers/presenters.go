package controllers

import (
	"caelio/internal/models/book_models"
	"caelio/internal/models/quiz_models"
	"caelio/internal/models/response_models"
	"caelio/internal/services"
)

func toProfileResponse(profile quiz_models.Profile) response_models.ProfileResponse {
	scores := make([]response_models.GroupScoreEntry, 0, len(quiz_models.AllGroups))
	for _, gs := range profile.ScoresInOrder() {
		scores = append(scores, response_models.GroupScoreEntry{
			Group: string(gs.Group),
			Score: gs.Score,
		})
	}
	return response_models.ProfileResponse{
		PrimaryGroup:     string(profile.PrimaryGroup),
		SecondaryGroup:   string(profile.SecondaryGroup),
		PrimaryScore:     profile.PrimaryScore,
		SecondaryScore:   profile.SecondaryScore,
		SynthesizerScore: profile.SynthesizerScore,
		IsSynthesizer:    profile.IsSynthesizer,
		ProfileName:      profile.ProfileName,
		EnglishName:      profile.EnglishName,
		AllScores:        scores,
		IsMultiMotivated: profile.IsMultiMotivated,
		Description:      services.GroupDescription(profile.PrimaryGroup, profile.IsSynthesizer),
	}
}

func toProfessionalResponse(p quiz_models.ProfessionalProfile) response_models.ProfessionalAnalysisResponse {
	motivationTip, styleTip, presentationTip := services.LearningTips(p.Motivation, p.LearningStyle, p.PresentationPreference)
	return response_models.ProfessionalAnalysisResponse{
		Field:                  p.Field,
		Motivation:             p.Motivation,
		LearningStyle:          p.LearningStyle,
		PresentationPreference: p.PresentationPreference,
		SynthesizerIndicators:  p.SynthesizerIndicators,
		IsSynthesizer:          p.IsSynthesizer,
		FieldDescription:       services.FieldDescription(p.Field),
		LearningRecommendations: response_models.LearningRecommendations{
			MotivationTip:   motivationTip,
			StyleTip:        styleTip,
			PresentationTip: presentationTip,
		},
	}
}

func toRecommendations(recs []book_models.Recommendation) []response_models.BookRecommendation {
	out := make([]response_models.BookRecommendation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, response_models.BookRecommendation{
			ProductID:             rec.ProductID,
			Title:                 rec.Title,
			Authors:               rec.Authors,
			Category:              rec.Category,
			Summary:               rec.Summary,
			PersonalityMatchScore: rec.PersonalityMatchScore,
			CoverLink:             rec.CoverLink,
		})
	}
	return out
}

func toMatchResult(profile quiz_models.Profile, match services.MatchResult) response_models.RecommendationResult {
	return response_models.RecommendationResult{
		Profile:           toProfileResponse(profile),
		Recommendations:   toRecommendations(match.Recommendations),
		TotalMatches:      match.TotalMatches,
		MatchDistribution: match.MatchDistribution,
	}
}

func toDiscoveryQuestionResponse(q quiz_models.DiscoveryQuestion) response_models.QuestionResponse {
	choices := make(map[string]response_models.ChoiceResponse, len(q.Choices))
	for letter, choice := range q.Choices {
		choices[letter] = response_models.ChoiceResponse{
			Text:        choice.Text,
			Group:       string(choice.Group),
			Synthesizer: choice.Synthesizer,
		}
	}
	return response_models.QuestionResponse{
		ID:          q.ID,
		Question:    q.Question,
		ChoiceOrder: q.ChoiceOrder,
		Choices:     choices,
	}
}

func toProfessionalQuestionResponse(q quiz_models.ProfessionalQuestion) response_models.QuestionResponse {
	choices := make(map[string]response_models.ChoiceResponse, len(q.Choices))
	for letter, choice := range q.Choices {
		choices[letter] = response_models.ChoiceResponse{
			Text:                 choice.Text,
			Field:                choice.Field,
			Motivation:           choice.Motivation,
			Style:                choice.Style,
			Presentation:         choice.Presentation,
			SynthesizerPotential: choice.SynthesizerPotential,
		}
	}
	return response_models.QuestionResponse{
		ID:          q.ID,
		Question:    q.Question,
		ChoiceOrder: q.ChoiceOrder,
		Choices:     choices,
	}
}
