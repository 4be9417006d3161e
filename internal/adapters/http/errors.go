package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/reelfolio/core/internal/infrastructure/logger"
)

// NewErrorHandler renders every error as a JSON payload with a message field.
// Handlers are expected to return *echo.HTTPError; anything else is a 500.
func NewErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		var he *echo.HTTPError
		var fieldErrs validator.ValidationErrors

		switch {
		case errors.As(err, &he):
			code = he.Code
			msg = he.Message
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		case errors.As(err, &fieldErrs):
			validationErr := validationFailed(fieldErrs).(*echo.HTTPError)
			code = validationErr.Code
			msg = validationErr.Message
		default:
			msg = http.StatusText(code)
		}

		if text, ok := msg.(string); ok {
			msg = MessageResponse{Message: text}
		}

		reqLogger := logger.WithRequestID(c.Response().Header().Get(echo.HeaderXRequestID))

		if code >= http.StatusInternalServerError {
			reqLogger.WithError(err).Errorw("Internal server error", "path", c.Request().URL.Path)
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, msg)
		}
		if err != nil {
			reqLogger.WithError(err).Errorw("Error sending response")
		}
	}
}
