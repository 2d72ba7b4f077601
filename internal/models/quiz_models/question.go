package quiz_models

// DiscoveryChoice is one answer option on a discovery-track question.
// A choice either carries one of the five canonical groups or is a pure
// synthesizer choice (Group left empty, Synthesizer true).
type DiscoveryChoice struct {
	Text        string
	Group       Group
	Synthesizer bool
}

// ProfessionalChoice is one answer option on a professional-track question.
// Exactly one of Field/Motivation/Style/Presentation is set, matching the
// question it belongs to.
type ProfessionalChoice struct {
	Text                 string
	Field                string
	Motivation           string
	Style                string
	Presentation         string
	SynthesizerPotential bool
}

// DiscoveryQuestion holds the prompt and the ordered choice letters.
type DiscoveryQuestion struct {
	ID          string
	Question    string
	ChoiceOrder []string
	Choices     map[string]DiscoveryChoice
}

type ProfessionalQuestion struct {
	ID          string
	Question    string
	ChoiceOrder []string
	Choices     map[string]ProfessionalChoice
}

// WhyQuestionIDs are the first three discovery questions. They form the
// short "why" pass and decide tie-breaks on the full pass.
var WhyQuestionIDs = []string{"Q1", "Q2", "Q3"}

func DiscoveryQuestionByID(id string) (DiscoveryQuestion, bool) {
	for _, q := range DiscoveryQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return DiscoveryQuestion{}, false
}

func ProfessionalQuestionByID(id string) (ProfessionalQuestion, bool) {
	for _, q := range ProfessionalQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return ProfessionalQuestion{}, false
}
