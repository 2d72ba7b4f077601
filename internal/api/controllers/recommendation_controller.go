package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"caelio/internal/models/request_models"
	"caelio/internal/models/response_models"
	"caelio/internal/services"
	"caelio/pkg/utils"
)

type RecommendationController struct {
	personalityService services.PersonalityServiceInterface
	matcherService     services.MatcherServiceInterface
}

func NewRecommendationController(
	personalityService services.PersonalityServiceInterface,
	matcherService services.MatcherServiceInterface,
) *RecommendationController {
	return &RecommendationController{
		personalityService: personalityService,
		matcherService:     matcherService,
	}
}

func parseTopN(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("top_n", strconv.Itoa(services.DefaultTopN))
	topN, err := strconv.Atoi(raw)
	if err != nil || topN <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "top_n must be a positive integer")
		return 0, false
	}
	return topN, true
}

func parseStrategy(c *gin.Context) services.MatchStrategy {
	if c.Query("strategy") == string(services.StrategyKeyword) {
		return services.StrategyKeyword
	}
	return services.StrategyCategory
}

// Recommend godoc
// @Summary Resolve a profile and recommend matching books
// @Description Runs the discovery resolver on the submitted answers, then ranks the catalog against the resolved profile
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param top_n query int false "Maximum number of books to return (default 20)"
// @Param strategy query string false "Matching strategy: category (default) or keyword"
// @Param request body request_models.DiscoveryAnswersRequest true "Quiz answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /recommend [post]
func (r *RecommendationController) Recommend(c *gin.Context) {
	var req request_models.DiscoveryAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	topN, ok := parseTopN(c)
	if !ok {
		return
	}

	profile, err := r.personalityService.ResolveDiscovery(req.ToMap())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	match, err := r.matcherService.Recommend(c.Request.Context(), profile, topN, parseStrategy(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toMatchResult(profile, match), "Recommendations generated")
}

// Discover godoc
// @Summary Short discovery flow: 3 answers in, profile and books out
// @Description Same pipeline as /recommend but documented for the Q1-Q3 quick pass
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param top_n query int false "Maximum number of books to return (default 20)"
// @Param strategy query string false "Matching strategy: category (default) or keyword"
// @Param request body request_models.DiscoveryAnswersRequest true "Quiz answers (Q1-Q3 suffice)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /discover [post]
func (r *RecommendationController) Discover(c *gin.Context) {
	r.Recommend(c)
}

// Professional godoc
// @Summary Professional-track recommendations
// @Description Resolves the professional profile and ranks the catalog with keyword scoring filtered by field
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param top_n query int false "Maximum number of books to return (default 20)"
// @Param request body request_models.ProfessionalAnswersRequest true "Professional quiz answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /professional [post]
func (r *RecommendationController) Professional(c *gin.Context) {
	var req request_models.ProfessionalAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	topN, ok := parseTopN(c)
	if !ok {
		return
	}

	professional, err := r.personalityService.ResolveProfessional(req.ToMap())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	match, err := r.matcherService.RecommendProfessional(c.Request.Context(), professional, topN)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ProfessionalRecommendationResult{
		ProfessionalAnalysis: toProfessionalResponse(professional),
		Recommendations:      toRecommendations(match.Recommendations),
		TotalMatches:         match.TotalMatches,
		TopNRequested:        topN,
	}, "Professional recommendations generated")
}
