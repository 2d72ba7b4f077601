package response_models

// ChoiceResponse serves one answer option. Discovery choices fill group and
// synthesizer; professional choices fill the attribute tags instead.
type ChoiceResponse struct {
	Text                 string `json:"text"`
	Group                string `json:"group,omitempty"`
	Synthesizer          bool   `json:"synthesizer,omitempty"`
	Field                string `json:"field,omitempty"`
	Motivation           string `json:"motivation,omitempty"`
	Style                string `json:"style,omitempty"`
	Presentation         string `json:"presentation,omitempty"`
	SynthesizerPotential bool   `json:"synthesizer_potential,omitempty"`
}

type QuestionResponse struct {
	ID          string                    `json:"id"`
	Question    string                    `json:"question"`
	ChoiceOrder []string                  `json:"choice_order"`
	Choices     map[string]ChoiceResponse `json:"choices"`
}
