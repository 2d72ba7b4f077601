package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"caelio/internal/models/request_models"
	"caelio/internal/services"
	"caelio/pkg/utils"
)

type PersonalityController struct {
	personalityService services.PersonalityServiceInterface
}

func NewPersonalityController(personalityService services.PersonalityServiceInterface) *PersonalityController {
	return &PersonalityController{
		personalityService: personalityService,
	}
}

// Analyze godoc
// @Summary Resolve a discovery personality profile
// @Description Accepts 3 (Q1-Q3) or 8 (Q1-Q8) quiz answers and returns the resolved reading personality
// @Tags Personality
// @Accept json
// @Produce json
// @Param request body request_models.DiscoveryAnswersRequest true "Quiz answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /analyze [post]
func (p *PersonalityController) Analyze(c *gin.Context) {
	var req request_models.DiscoveryAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.personalityService.ResolveDiscovery(req.ToMap())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toProfileResponse(profile), "Personality profile resolved")
}

// AnalyzeProfessional godoc
// @Summary Resolve a professional learning profile
// @Description Accepts the 4 professional-track answers and returns field, motivation, style and presentation
// @Tags Personality
// @Accept json
// @Produce json
// @Param request body request_models.ProfessionalAnswersRequest true "Professional quiz answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /analyze-professional [post]
func (p *PersonalityController) AnalyzeProfessional(c *gin.Context) {
	var req request_models.ProfessionalAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	professional, err := p.personalityService.ResolveProfessional(req.ToMap())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toProfessionalResponse(professional), "Professional profile resolved")
}
