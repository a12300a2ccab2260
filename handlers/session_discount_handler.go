package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type SessionDiscountHandler struct {
	sessionDiscountService services.SessionDiscountService
}

func NewSessionDiscountHandler(svc services.SessionDiscountService) *SessionDiscountHandler {
	return &SessionDiscountHandler{sessionDiscountService: svc}
}

// GetSessionDiscounts godoc
// @Summary List session discounts
// @Tags SessionDiscount
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /session-discount [get]
func (h *SessionDiscountHandler) GetSessionDiscounts(w http.ResponseWriter, r *http.Request) {
	items, err := h.sessionDiscountService.GetAllSessionDiscounts(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Discounts found", items)
}

// GetSessionDiscount godoc
// @Summary Get a session discount
// @Tags SessionDiscount
// @Security BearerAuth
// @Param id path int true "Session Discount ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /session-discount/{id} [get]
func (h *SessionDiscountHandler) GetSessionDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionDiscountService.GetSessionDiscountByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Discount found", item)
}

// CreateSessionDiscount godoc
// @Summary Create a session discount
// @Tags SessionDiscount
// @Security BearerAuth
// @Param body body services.CreateSessionDiscountInput true "Session Discount"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /session-discount [post]
func (h *SessionDiscountHandler) CreateSessionDiscount(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSessionDiscountInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionDiscountService.CreateSessionDiscount(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Session Discount created", item)
}

// UpdateSessionDiscount godoc
// @Summary Update a session discount
// @Tags SessionDiscount
// @Security BearerAuth
// @Param id path int true "Session Discount ID"
// @Param body body services.UpdateSessionDiscountInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /session-discount/{id} [put]
func (h *SessionDiscountHandler) UpdateSessionDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSessionDiscountInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionDiscountService.UpdateSessionDiscount(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Discount updated", item)
}

// DeleteSessionDiscount godoc
// @Summary Delete a session discount
// @Tags SessionDiscount
// @Security BearerAuth
// @Param id path int true "Session Discount ID"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Router /session-discount/{id} [delete]
func (h *SessionDiscountHandler) DeleteSessionDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sessionDiscountService.DeleteSessionDiscount(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Discount deleted", nil)
}
