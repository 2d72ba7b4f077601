package response_models

// SessionResponse reports quiz progression for the session endpoints. The
// next question is omitted once the session is complete.
type SessionResponse struct {
	SessionID    string            `json:"session_id"`
	Track        string            `json:"track"`
	CurrentStep  int               `json:"current_step"`
	TotalSteps   int               `json:"total_steps"`
	IsComplete   bool              `json:"is_complete"`
	Question     *QuestionResponse `json:"question,omitempty"`
	NextEndpoint string            `json:"next_endpoint,omitempty"`
}
