package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "networth/internal/errors"
	"networth/internal/services"
)

// InvestmentHandler handles requests against the investment ledger.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// AddInvestmentRequest represents the request payload for a ledger entry.
// AmountInvested is a signed delta: positive buys in, negative divests.
type AddInvestmentRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=100"`
	Type           string   `json:"type" binding:"required,min=1,max=50"`
	AmountInvested *float64 `json:"amount_invested" binding:"required"`
	CurrentValue   float64  `json:"current_value" binding:"gte=0"`
}

// AddInvestment handles appending an entry to the investment ledger.
// @Summary     Add investment entry
// @Description Append an entry to the investment ledger. Entries are never updated or deleted; corrections are new entries.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddInvestmentRequest true "Ledger entry"
// @Success     201 {object} models.Investment "Entry recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) AddInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.investmentService.AddEntry(userID, req.Name, req.Type, *req.AmountInvested, req.CurrentValue)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetInvestments handles listing the user's ledger entries.
// @Summary     Get investments
// @Description Get all investment ledger entries for the authenticated user, newest first
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Investment "Ledger entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.GetUserInvestments(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// GetInvestment handles retrieving a single ledger entry.
// @Summary     Get investment by ID
// @Description Get a specific investment ledger entry by ID
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Investment ID"
// @Success     200 {object} models.Investment "Ledger entry"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// GetTotalInvested handles retrieving the net invested amount.
// @Summary     Get total invested
// @Description Get the net invested amount, the sum of all signed ledger deltas
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Net invested amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/total [get]
func (h *InvestmentHandler) GetTotalInvested(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.investmentService.GetTotalInvested(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}
