package request_models

// DiscoveryAnswersRequest carries quiz answers keyed Q1..Q8. Q4-Q8 are
// optional: the short "why" pass sends only Q1-Q3. Letters are validated by
// the personality service, not here.
type DiscoveryAnswersRequest struct {
	Q1 string  `json:"Q1" binding:"required"`
	Q2 string  `json:"Q2" binding:"required"`
	Q3 string  `json:"Q3" binding:"required"`
	Q4 *string `json:"Q4,omitempty"`
	Q5 *string `json:"Q5,omitempty"`
	Q6 *string `json:"Q6,omitempty"`
	Q7 *string `json:"Q7,omitempty"`
	Q8 *string `json:"Q8,omitempty"`
}

// ToMap drops unanswered questions so the resolver sees only what the
// caller actually sent.
func (r DiscoveryAnswersRequest) ToMap() map[string]string {
	answers := map[string]string{
		"Q1": r.Q1,
		"Q2": r.Q2,
		"Q3": r.Q3,
	}
	optional := map[string]*string{
		"Q4": r.Q4, "Q5": r.Q5, "Q6": r.Q6, "Q7": r.Q7, "Q8": r.Q8,
	}
	for q, letter := range optional {
		if letter != nil && *letter != "" {
			answers[q] = *letter
		}
	}
	return answers
}

// ProfessionalAnswersRequest carries the 4 professional-track answers.
type ProfessionalAnswersRequest struct {
	Q1 string `json:"Q1" binding:"required"`
	Q2 string `json:"Q2" binding:"required"`
	Q3 string `json:"Q3" binding:"required"`
	Q4 string `json:"Q4" binding:"required"`
}

func (r ProfessionalAnswersRequest) ToMap() map[string]string {
	return map[string]string{
		"Q1": r.Q1,
		"Q2": r.Q2,
		"Q3": r.Q3,
		"Q4": r.Q4,
	}
}

type SessionStartRequest struct {
	Track  string `json:"track"`
	UserID string `json:"user_id,omitempty"`
}

type SessionAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Letter     string `json:"letter" binding:"required"`
}
