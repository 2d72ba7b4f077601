package response_models

// BookRecommendation is one ranked catalog book.
type BookRecommendation struct {
	ProductID             string  `json:"product_id"`
	Title                 string  `json:"title"`
	Authors               string  `json:"authors,omitempty"`
	Category              string  `json:"category"`
	Summary               string  `json:"summary,omitempty"`
	PersonalityMatchScore float64 `json:"personality_match_score"`
	CoverLink             string  `json:"cover_link,omitempty"`
}

// RecommendationResult is the /recommend and /discover payload.
type RecommendationResult struct {
	Profile           ProfileResponse      `json:"profile"`
	Recommendations   []BookRecommendation `json:"recommendations"`
	TotalMatches      int                  `json:"total_matches"`
	MatchDistribution map[string]int       `json:"match_distribution"`
}

// ProfessionalRecommendationResult is the /professional payload.
type ProfessionalRecommendationResult struct {
	ProfessionalAnalysis ProfessionalAnalysisResponse `json:"professional_analysis"`
	Recommendations      []BookRecommendation         `json:"recommendations"`
	TotalMatches         int                          `json:"total_matches"`
	TopNRequested        int                          `json:"top_n_requested"`
}
