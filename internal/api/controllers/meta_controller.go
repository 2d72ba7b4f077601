package controllers

import (
	"github.com/gin-gonic/gin"

	"caelio/internal/models/quiz_models"
	"caelio/internal/repositories"
	"caelio/internal/services"
	"caelio/pkg/utils"
)

type MetaController struct {
	bookRepository repositories.BookRepositoryInterface
}

func NewMetaController(bookRepository repositories.BookRepositoryInterface) *MetaController {
	return &MetaController{
		bookRepository: bookRepository,
	}
}

// Root godoc
// @Summary API index
// @Tags Meta
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router / [get]
func (m *MetaController) Root(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"name":    "Caelio - Reading Personality & Book Recommendations",
		"version": "1.0.0",
		"endpoints": gin.H{
			"questions":            "GET /questions?track=discovery|professional",
			"analyze":              "POST /analyze",
			"analyze_professional": "POST /analyze-professional",
			"recommend":            "POST /recommend?top_n=20&strategy=category|keyword",
			"discover":             "POST /discover",
			"professional":         "POST /professional?top_n=20",
			"sessions":             "POST /sessions",
			"books":                "GET /books/:id",
			"groups":               "GET /groups",
			"stats":                "GET /stats",
			"health":               "GET /health",
		},
	}, "")
}

// Health godoc
// @Summary Liveness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (m *MetaController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"healthy": true}, "")
}

// Groups godoc
// @Summary List the five personality groups
// @Tags Meta
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /groups [get]
func (m *MetaController) Groups(c *gin.Context) {
	groups := make([]gin.H, 0, len(quiz_models.AllGroups))
	for _, g := range quiz_models.AllGroups {
		groups = append(groups, gin.H{
			"group":        string(g),
			"english_name": quiz_models.EnglishNames[g],
			"description":  services.GroupDescription(g, false),
		})
	}
	utils.RespondSuccess(c, gin.H{"total": len(groups), "groups": groups}, "")
}

// Stats godoc
// @Summary Catalog and quiz statistics
// @Tags Meta
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /stats [get]
func (m *MetaController) Stats(c *gin.Context) {
	catalog, err := m.bookRepository.LoadCatalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	categories := map[string]struct{}{}
	for _, book := range catalog {
		if book.Category != "" {
			categories[book.Category] = struct{}{}
		}
	}

	utils.RespondSuccess(c, gin.H{
		"total_books":            len(catalog),
		"total_categories":       len(categories),
		"personality_groups":     len(quiz_models.AllGroups),
		"discovery_questions":    len(quiz_models.DiscoveryQuestions),
		"professional_questions": len(quiz_models.ProfessionalQuestions),
	}, "")
}
