package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidAnswerCount):
		RespondError(c, http.StatusBadRequest, "Must provide either 3 answers (Q1-Q3) or 8 answers (Q1-Q8)")
	case errors.Is(err, ErrUnknownQuestion):
		RespondError(c, http.StatusBadRequest, "Unknown question id")
	case errors.Is(err, ErrInvalidChoice):
		RespondError(c, http.StatusBadRequest, "Invalid answer for question")
	case errors.Is(err, ErrInvalidTopN):
		RespondError(c, http.StatusBadRequest, "top_n must be greater than 0")
	case errors.Is(err, ErrInvalidTrack):
		RespondError(c, http.StatusBadRequest, "question track must be 'discovery' or 'professional'")
	case errors.Is(err, ErrCatalogUnavailable):
		RespondError(c, http.StatusNotFound, "Book database not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Quiz session not found")
	case errors.Is(err, ErrSessionComplete):
		RespondError(c, http.StatusConflict, "Quiz session already complete")
	case errors.Is(err, ErrSessionIncomplete):
		RespondError(c, http.StatusConflict, "Quiz session has unanswered questions")
	case errors.Is(err, ErrUnknownGroup):
		log.Printf("Unknown personality group: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrStoreError):
		log.Printf("Session store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
