package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caelio/internal/models/quiz_models"
	"caelio/internal/models/request_models"
	"caelio/internal/models/response_models"
	"caelio/internal/services"
	"caelio/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

func toSessionResponse(session quiz_models.QuizSession) response_models.SessionResponse {
	resp := response_models.SessionResponse{
		SessionID:   session.ID,
		Track:       session.Track,
		CurrentStep: len(session.Answers),
		TotalSteps:  session.TotalSteps(),
		IsComplete:  session.IsComplete(),
	}
	if resp.IsComplete {
		resp.NextEndpoint = "/sessions/" + session.ID + "/result"
		return resp
	}

	nextID := session.NextQuestionID()
	switch session.Track {
	case quiz_models.TrackProfessional:
		if q, ok := quiz_models.ProfessionalQuestionByID(nextID); ok {
			question := toProfessionalQuestionResponse(q)
			resp.Question = &question
		}
	default:
		if q, ok := quiz_models.DiscoveryQuestionByID(nextID); ok {
			question := toDiscoveryQuestionResponse(q)
			resp.Question = &question
		}
	}
	resp.NextEndpoint = "/sessions/" + session.ID + "/answers"
	return resp
}

// StartSession godoc
// @Summary Start an interactive quiz session
// @Description Creates a session that serves questions one at a time
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.SessionStartRequest false "Session options"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /sessions [post]
func (s *SessionController) StartSession(c *gin.Context) {
	var req request_models.SessionStartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	session, err := s.sessionService.StartSession(c.Request.Context(), req.Track, req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toSessionResponse(session), "Quiz session started")
}

// GetSession godoc
// @Summary Get session progress
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{id} [get]
func (s *SessionController) GetSession(c *gin.Context) {
	session, err := s.sessionService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, toSessionResponse(session), "")
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Records one answer and returns the next question, or the result endpoint when complete
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.SessionAnswerRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /sessions/{id}/answers [post]
func (s *SessionController) SubmitAnswer(c *gin.Context) {
	var req request_models.SessionAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := s.sessionService.SubmitAnswer(c.Request.Context(), c.Param("id"), req.QuestionID, req.Letter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toSessionResponse(session), "Answer recorded")
}

// Result godoc
// @Summary Resolve a completed session
// @Description Resolves the profile for the session's track and returns ranked recommendations
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Param top_n query int false "Maximum number of books to return (default 20)"
// @Param strategy query string false "Matching strategy: category (default) or keyword"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /sessions/{id}/result [get]
func (s *SessionController) Result(c *gin.Context) {
	topN, ok := parseTopN(c)
	if !ok {
		return
	}

	result, err := s.sessionService.Result(c.Request.Context(), c.Param("id"), topN, parseStrategy(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	switch result.Track {
	case quiz_models.TrackProfessional:
		utils.RespondSuccess(c, response_models.ProfessionalRecommendationResult{
			ProfessionalAnalysis: toProfessionalResponse(*result.Professional),
			Recommendations:      toRecommendations(result.Match.Recommendations),
			TotalMatches:         result.Match.TotalMatches,
			TopNRequested:        topN,
		}, "Session resolved")
	default:
		utils.RespondSuccess(c, toMatchResult(*result.Profile, result.Match), "Session resolved")
	}
}
