package demorequest

import (
	"net/http"
	"time"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/gin-gonic/gin"
)

type response struct {
	OK      bool        `json:"ok"`
	Storage string      `json:"storage,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// HandleCreate stores a demo request and reports which storage accepted it.
func HandleCreate(intakeService core.IntakeService, recorder core.IntakeRecorder, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if p := recover(); p != nil {
				logger.Errorf("panic while handling demo request: %v", p)
				unexpected(c, recorder, start)
			}
		}()

		var input core.DemoRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			if errs.IsValidationErr(err) {
				logger.Debugf("invalid demo request payload: %v", err)
				if recorder != nil {
					recorder.Observe(core.OutcomeInvalidInput, time.Since(start))
				}
				c.JSON(http.StatusBadRequest, response{
					Message: errs.ErrMissingDemoFields.Error(),
					Errors:  errs.ValidationErr(err),
				})
				return
			}
			logger.Errorf("error while binding demo request json, error: %v", err)
			unexpected(c, recorder, start)
			return
		}

		result := intakeService.Submit(c.Request.Context(), input)
		switch result.Outcome {
		case core.OutcomeStoredRemote, core.OutcomeStoredLocalDirect, core.OutcomeStoredLocalFallback:
			c.JSON(http.StatusOK, response{OK: true, Storage: result.Storage})
		case core.OutcomeInvalidInput:
			c.JSON(http.StatusBadRequest, response{Message: result.Message})
		default:
			c.JSON(http.StatusInternalServerError, response{Message: result.Message})
		}
	}
}

// HandleStorageStatus reports whether remote storage is configured. Only
// booleans are returned, never the configured values.
func HandleStorageStatus(intakeService core.IntakeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, intakeService.RemoteStatus())
	}
}

func unexpected(c *gin.Context, recorder core.IntakeRecorder, start time.Time) {
	if recorder != nil {
		recorder.Observe(core.OutcomeUnexpectedError, time.Since(start))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, response{Message: errs.GenericErrorMessage.Error()})
}
