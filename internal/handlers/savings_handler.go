package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "networth/internal/errors"
	"networth/internal/services"
)

// SavingsHandler handles requests against the per-user savings balance.
type SavingsHandler struct {
	savingsService services.SavingsServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// SetSavingsRequest represents the request payload for replacing the balance.
type SetSavingsRequest struct {
	Amount *float64 `json:"amount" binding:"required,gte=0"`
}

// AdjustSavingsRequest represents the request payload for a relative change.
type AdjustSavingsRequest struct {
	Delta *float64 `json:"delta" binding:"required"`
}

// GetSavings handles retrieving the user's savings balance.
// @Summary     Get savings
// @Description Get the authenticated user's savings balance. Users who never saved see 0.
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Savings balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [get]
func (h *SavingsHandler) GetSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	amount, err := h.savingsService.GetSavings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

// SetSavings handles replacing the user's savings balance.
// @Summary     Set savings
// @Description Replace the authenticated user's savings balance with an absolute amount
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetSavingsRequest true "New balance"
// @Success     200 {object} models.Savings "Updated savings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [put]
func (h *SavingsHandler) SetSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	savings, err := h.savingsService.SetSavings(userID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings": savings})
}

// AdjustSavings handles a deposit or withdrawal against the balance.
// @Summary     Adjust savings
// @Description Apply a signed delta to the savings balance. Withdrawals that would take the balance below zero are rejected.
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AdjustSavingsRequest true "Signed amount to add"
// @Success     200 {object} models.Savings "Updated savings"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient savings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings/adjust [post]
func (h *SavingsHandler) AdjustSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdjustSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	savings, err := h.savingsService.AdjustSavings(userID, *req.Delta)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings": savings})
}
