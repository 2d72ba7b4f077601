package quiz_models

// Profile is the resolved discovery result. It is a pure value: built once
// per request and never mutated afterwards.
type Profile struct {
	PrimaryGroup     Group
	SecondaryGroup   Group
	PrimaryScore     int
	SecondaryScore   int
	SynthesizerScore int
	IsSynthesizer    bool
	ProfileName      string
	EnglishName      string
	AllScores        map[Group]int
	IsMultiMotivated bool
}

// ScoresInOrder returns every group's score following the canonical group
// declaration order. AllScores always contains all five groups.
func (p Profile) ScoresInOrder() []GroupScore {
	out := make([]GroupScore, 0, len(AllGroups))
	for _, g := range AllGroups {
		out = append(out, GroupScore{Group: g, Score: p.AllScores[g]})
	}
	return out
}

type GroupScore struct {
	Group Group
	Score int
}

// ProfessionalProfile is the resolved professional-track result.
type ProfessionalProfile struct {
	Field                  string
	Motivation             string
	LearningStyle          string
	PresentationPreference string
	SynthesizerIndicators  int
	IsSynthesizer          bool
}

// BorrowedGroup maps the professional field onto a canonical group so the
// profile can drive the book matcher.
func (p ProfessionalProfile) BorrowedGroup() Group {
	if g, ok := FieldToGroup[p.Field]; ok {
		return g
	}
	return GroupTriThuc
}
