package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/reelfolio/core/internal/domain/entities"
)

// CustomValidator wraps the validator so it can be installed as echo's
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Request/Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details"`
}

// bindAndValidate decodes the JSON body into req and checks its constraints
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format").SetInternal(err)
	}

	if err := c.Validate(req); err != nil {
		return validationFailed(err)
	}

	return nil
}

func validationFailed(err error) error {
	resp := ValidationErrorResponse{
		Message: entities.ErrValidationFailed.Error(),
		Details: []FieldError{},
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			resp.Details = append(resp.Details, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
	}

	return echo.NewHTTPError(http.StatusBadRequest, resp).
		SetInternal(fmt.Errorf("%w: %v", entities.ErrValidationFailed, err))
}

// serviceError maps service failures to HTTP errors
func serviceError(err error) error {
	switch {
	case errors.Is(err, entities.ErrProjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Project not found")
	case errors.Is(err, entities.ErrIncomeNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Income entry not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
	}
}
