package handler

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/domain/entity"
	"collabhub/internal/usecase"
	"collabhub/pkg/errors"
	"collabhub/pkg/response"
)

type DealHandler struct {
	dealUC *usecase.DealUseCase
}

func NewDealHandler(dealUC *usecase.DealUseCase) *DealHandler {
	return &DealHandler{dealUC: dealUC}
}

type CreateDealRequest struct {
	ContactID   string  `json:"contact_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateDealStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req CreateDealRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	deal, err := h.dealUC.CreateDeal(c.Request().Context(), usecase.CreateDealInput{
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, deal)
}

func (h *DealHandler) ListDeals(c echo.Context) error {
	deals, err := h.dealUC.ListDeals(c.Request().Context(), entity.DealStatus(c.QueryParam("status")))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, deals)
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	deal, err := h.dealUC.GetDeal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, deal)
}

func (h *DealHandler) UpdateStatus(c echo.Context) error {
	var req UpdateDealStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	deal, err := h.dealUC.UpdateStatus(c.Request().Context(), c.Param("id"), entity.DealStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, deal)
}
