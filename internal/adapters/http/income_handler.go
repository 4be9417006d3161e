package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelfolio/core/internal/infrastructure/logger"
	"github.com/reelfolio/core/internal/ports"
)

// IncomeHandler handles income tracking requests
type IncomeHandler struct {
	incomeService ports.IncomeService
	logger        *logger.Logger
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService ports.IncomeService, logger *logger.Logger) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
		logger:        logger,
	}
}

// ListIncomes godoc
// @Summary List income entries
// @Description Return every entry sorted by date, newest first
// @Tags incomes
// @Produce json
// @Success 200 {array} entities.IncomeEntry
// @Router /incomes [get]
func (h *IncomeHandler) ListIncomes(c echo.Context) error {
	incomes, err := h.incomeService.ListIncomes(c.Request().Context())
	if err != nil {
		h.logger.Errorw("List incomes failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, incomes)
}

// CreateIncome godoc
// @Summary Record an income entry
// @Tags incomes
// @Accept json
// @Produce json
// @Param request body ports.IncomeRequest true "Income data"
// @Success 201 {object} entities.IncomeEntry
// @Failure 400 {object} ValidationErrorResponse
// @Router /incomes [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	var req ports.IncomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.incomeService.CreateIncome(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("Create income failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// DeleteIncome godoc
// @Summary Delete an income entry
// @Tags incomes
// @Param id path string true "Income entry ID"
// @Success 204
// @Failure 404 {object} MessageResponse
// @Router /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	id := c.Param("id")

	if err := h.incomeService.DeleteIncome(c.Request().Context(), id); err != nil {
		h.logger.Warnw("Delete income failed", "error", err, "income_id", id)
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSummary godoc
// @Summary Income totals per month
// @Tags incomes
// @Produce json
// @Success 200 {object} entities.IncomeSummary
// @Router /incomes/summary [get]
func (h *IncomeHandler) GetSummary(c echo.Context) error {
	summary, err := h.incomeService.Summary(c.Request().Context())
	if err != nil {
		h.logger.Errorw("Income summary failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, summary)
}
