package response_models

// ProfileResponse flattens a resolved discovery profile for the API,
// together with the static per-group description block.
type ProfileResponse struct {
	PrimaryGroup     string            `json:"primary_group"`
	SecondaryGroup   string            `json:"secondary_group,omitempty"`
	PrimaryScore     int               `json:"primary_score"`
	SecondaryScore   int               `json:"secondary_score"`
	SynthesizerScore int               `json:"synthesizer_score"`
	IsSynthesizer    bool              `json:"is_synthesizer"`
	ProfileName      string            `json:"profile_name"`
	EnglishName      string            `json:"english_name"`
	AllScores        []GroupScoreEntry `json:"all_scores"`
	IsMultiMotivated bool              `json:"is_multi_motivated"`
	Description      map[string]string `json:"description"`
}

// GroupScoreEntry keeps the canonical group ordering in JSON, which a plain
// map would not.
type GroupScoreEntry struct {
	Group string `json:"group"`
	Score int    `json:"score"`
}

type LearningRecommendations struct {
	MotivationTip   string `json:"motivation_tip"`
	StyleTip        string `json:"style_tip"`
	PresentationTip string `json:"presentation_tip"`
}

// ProfessionalAnalysisResponse is the resolved professional-track result.
type ProfessionalAnalysisResponse struct {
	Field                   string                  `json:"field"`
	Motivation              string                  `json:"motivation"`
	LearningStyle           string                  `json:"learning_style"`
	PresentationPreference  string                  `json:"presentation_preference"`
	SynthesizerIndicators   int                     `json:"professional_synthesizer_indicators"`
	IsSynthesizer           bool                    `json:"is_professional_synthesizer"`
	FieldDescription        string                  `json:"field_description"`
	LearningRecommendations LearningRecommendations `json:"learning_recommendations"`
}
