package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	healthMessage       = "Fish Health AI Service is running"
	symptomsDescription = "Boolean values indicating presence of symptoms"

	msgMissingSymptoms = "Missing symptoms data"
	msgNotMapping      = "Symptoms must be a dictionary"
	msgFlagNotBoolean  = "Symptom values must be booleans"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		ModelType: s.predictor.ModelType(),
		Message:   healthMessage,
	})
}

// handlePredict runs the decision engine on the submitted symptoms. A result
// degraded to the fallback outcome is still a successful prediction.
func (s *Server) handlePredict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.rejectPredict(c, err)
		return
	}

	result, err := s.predictor.Predict(req.Symptoms)
	if verr := result.Validate(); verr != nil {
		cause := verr
		if err != nil {
			cause = err
		}
		s.log.Error("prediction failed",
			zap.String("request_id", requestIDFrom(c)),
			zap.Error(cause),
		)
		internalError(c, fmt.Sprintf("Prediction failed: %v", cause))
		return
	}
	if err != nil {
		s.metrics.ObserveFault()
		s.log.Warn("prediction degraded to fallback",
			zap.String("request_id", requestIDFrom(c)),
			zap.Error(err),
		)
	}

	s.metrics.ObservePrediction(result)
	s.log.Debug("prediction served",
		zap.String("request_id", requestIDFrom(c)),
		zap.String("disease", result.Disease),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("emergency", result.Emergency),
	)
	c.JSON(http.StatusOK, PredictResponse{Success: true, Prediction: result})
}

func (s *Server) rejectPredict(c *gin.Context, err error) {
	var (
		typeErr *json.UnmarshalTypeError
		valErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &typeErr) && typeErr.Type != nil && typeErr.Type.Kind() == reflect.Map:
		s.metrics.ObserveRejected("not_mapping")
		badRequest(c, msgNotMapping)
	case errors.As(err, &typeErr) && typeErr.Type != nil && typeErr.Type.Kind() == reflect.Bool:
		s.metrics.ObserveRejected("invalid_flag")
		badRequest(c, msgFlagNotBoolean)
	case errors.As(err, &valErrs):
		s.metrics.ObserveRejected("missing_symptoms")
		badRequestWithValidation(c, msgMissingSymptoms, valErrs)
	default:
		s.metrics.ObserveRejected("missing_symptoms")
		badRequest(c, msgMissingSymptoms)
	}
	s.log.Info("prediction request rejected",
		zap.String("request_id", requestIDFrom(c)),
		zap.Error(err),
	)
}

func (s *Server) handleSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, SymptomsResponse{
		Symptoms:    s.predictor.Symptoms(),
		Description: symptomsDescription,
	})
}

func (s *Server) handleDiseases(c *gin.Context) {
	diseases := s.predictor.Diseases()
	c.JSON(http.StatusOK, DiseasesResponse{
		Diseases: diseases,
		Count:    len(diseases),
	})
}
