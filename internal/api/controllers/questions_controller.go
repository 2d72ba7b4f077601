package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caelio/internal/models/quiz_models"
	"caelio/internal/models/response_models"
	"caelio/pkg/utils"
)

type QuestionsController struct{}

func NewQuestionsController() *QuestionsController {
	return &QuestionsController{}
}

// ListQuestions godoc
// @Summary List quiz questions
// @Description Returns the full question catalog for one track
// @Tags Questions
// @Produce json
// @Param track query string false "Question track: discovery (default) or professional"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /questions [get]
func (q *QuestionsController) ListQuestions(c *gin.Context) {
	track := c.DefaultQuery("track", quiz_models.TrackDiscovery)
	switch track {
	case quiz_models.TrackDiscovery:
		out := make([]response_models.QuestionResponse, 0, len(quiz_models.DiscoveryQuestions))
		for _, question := range quiz_models.DiscoveryQuestions {
			out = append(out, toDiscoveryQuestionResponse(question))
		}
		utils.RespondSuccess(c, gin.H{"track": track, "total": len(out), "questions": out}, "")
	case quiz_models.TrackProfessional:
		out := make([]response_models.QuestionResponse, 0, len(quiz_models.ProfessionalQuestions))
		for _, question := range quiz_models.ProfessionalQuestions {
			out = append(out, toProfessionalQuestionResponse(question))
		}
		utils.RespondSuccess(c, gin.H{"track": track, "total": len(out), "questions": out}, "")
	default:
		utils.HandleServiceError(c, utils.ErrInvalidTrack)
	}
}

// GetQuestion godoc
// @Summary Get one quiz question
// @Tags Questions
// @Produce json
// @Param id path string true "Question id, e.g. Q1"
// @Param track query string false "Question track: discovery (default) or professional"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /questions/{id} [get]
func (q *QuestionsController) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	track := c.DefaultQuery("track", quiz_models.TrackDiscovery)
	switch track {
	case quiz_models.TrackDiscovery:
		question, ok := quiz_models.DiscoveryQuestionByID(id)
		if !ok {
			utils.RespondError(c, http.StatusNotFound, "Question not found")
			return
		}
		utils.RespondSuccess(c, toDiscoveryQuestionResponse(question), "")
	case quiz_models.TrackProfessional:
		question, ok := quiz_models.ProfessionalQuestionByID(id)
		if !ok {
			utils.RespondError(c, http.StatusNotFound, "Question not found")
			return
		}
		utils.RespondSuccess(c, toProfessionalQuestionResponse(question), "")
	default:
		utils.HandleServiceError(c, utils.ErrInvalidTrack)
	}
}
