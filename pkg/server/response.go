package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
)

type HealthResponse struct {
	Status    string `json:"status"`
	ModelType string `json:"model_type"`
	Message   string `json:"message"`
}

type PredictRequest struct {
	Symptoms types.Observation `json:"symptoms" binding:"required"`
}

type PredictResponse struct {
	Success    bool                  `json:"success"`
	Prediction types.DiagnosisResult `json:"prediction"`
}

type SymptomsResponse struct {
	Symptoms    []types.Symptom `json:"symptoms"`
	Description string          `json:"description"`
}

type DiseasesResponse struct {
	Diseases []string `json:"diseases"`
	Count    int      `json:"count"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func badRequestWithValidation(c *gin.Context, message string, errs validator.ValidationErrors) {
	details := make([]ErrorDetail, 0, len(errs))
	for _, fieldErr := range errs {
		details = append(details, ErrorDetail{
			Path: fieldErr.Field(),
			Info: validationMessage(fieldErr),
		})
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message, Details: details})
}

func internalError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
