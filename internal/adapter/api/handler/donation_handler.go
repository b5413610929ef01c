package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
	"portfolia/pkg/response"
	"portfolia/pkg/utils"
)

type DonationHandler struct {
	donationUseCase *usecase.DonationUseCase
}

func NewDonationHandler(donationUseCase *usecase.DonationUseCase) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
	}
}

type initializeDonationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Amount   int64  `json:"amount" validate:"required,gt=0"` // minor units
	Currency string `json:"currency" validate:"omitempty,len=3"`
	Channel  string `json:"channel" validate:"omitempty,oneof=card mobile_money"`
}

func (h *DonationHandler) Initialize(c echo.Context) error {
	var req initializeDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	init, err := h.donationUseCase.Initialize(c.Request().Context(), usecase.InitializeDonationInput{
		Email:    req.Email,
		Amount:   req.Amount,
		Currency: req.Currency,
		Channel:  req.Channel,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, init)
}

type verifyDonationRequest struct {
	Reference string `json:"reference" validate:"required"`
	Name      string `json:"name" validate:"omitempty,max=100"`
}

// Verify confirms the charge with the gateway before anything is recorded.
// Re-verifying the same reference returns the original donation.
func (h *DonationHandler) Verify(c echo.Context) error {
	var req verifyDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	donation, err := h.donationUseCase.Verify(c.Request().Context(), req.Reference, req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, donation)
}

func (h *DonationHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	donations, total, err := h.donationUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, donations, total, params.Page, params.PageSize)
}
