package quiz_models

import "time"

// Track names the two quiz journeys.
const (
	TrackDiscovery    = "discovery"
	TrackProfessional = "professional"
)

// QuizSession is the request-scoped quiz progress state. The engine itself
// stays pure; sessions only exist so stateless callers can answer one
// question at a time.
type QuizSession struct {
	ID        string            `json:"id"`
	Track     string            `json:"track"`
	UserID    string            `json:"user_id,omitempty"`
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}

// TotalSteps is the question count for the session's track.
func (s QuizSession) TotalSteps() int {
	if s.Track == TrackProfessional {
		return len(ProfessionalQuestions)
	}
	return len(DiscoveryQuestions)
}

// NextQuestionID returns the first unanswered question in track order, or
// "" when the session is complete.
func (s QuizSession) NextQuestionID() string {
	if s.Track == TrackProfessional {
		for _, q := range ProfessionalQuestions {
			if _, answered := s.Answers[q.ID]; !answered {
				return q.ID
			}
		}
		return ""
	}
	for _, q := range DiscoveryQuestions {
		if _, answered := s.Answers[q.ID]; !answered {
			return q.ID
		}
	}
	return ""
}

func (s QuizSession) IsComplete() bool {
	return len(s.Answers) >= s.TotalSteps()
}
