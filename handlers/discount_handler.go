package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type DiscountHandler struct {
	discountService services.DiscountService
}

func NewDiscountHandler(svc services.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: svc}
}

// GetDiscounts godoc
// @Summary List discounts
// @Tags Discount
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /discounts [get]
func (h *DiscountHandler) GetDiscounts(w http.ResponseWriter, r *http.Request) {
	items, err := h.discountService.GetAllDiscounts(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Discounts found", items)
}

// GetDiscount godoc
// @Summary Get a discount
// @Tags Discount
// @Security BearerAuth
// @Param id path int true "Discount ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /discounts/{id} [get]
func (h *DiscountHandler) GetDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.discountService.GetDiscountByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Discount found", item)
}

// CreateDiscount godoc
// @Summary Create a discount
// @Tags Discount
// @Security BearerAuth
// @Param body body services.CreateDiscountInput true "Discount"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /discounts [post]
func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var input services.CreateDiscountInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.discountService.CreateDiscount(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Discount created", item)
}

// UpdateDiscount godoc
// @Summary Update a discount
// @Tags Discount
// @Security BearerAuth
// @Param id path int true "Discount ID"
// @Param body body services.UpdateDiscountInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /discounts/{id} [put]
func (h *DiscountHandler) UpdateDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateDiscountInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.discountService.UpdateDiscount(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Discount updated", item)
}

// DeleteDiscount godoc
// @Summary Delete a discount
// @Tags Discount
// @Security BearerAuth
// @Param id path int true "Discount ID"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) DeleteDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.discountService.DeleteDiscount(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Discount deleted", nil)
}
