package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type SessionExpenseHandler struct {
	sessionExpenseService services.SessionExpenseService
}

func NewSessionExpenseHandler(svc services.SessionExpenseService) *SessionExpenseHandler {
	return &SessionExpenseHandler{sessionExpenseService: svc}
}

// GetSessionExpenses godoc
// @Summary List session expenses
// @Tags SessionExpense
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /session-expenses [get]
func (h *SessionExpenseHandler) GetSessionExpenses(w http.ResponseWriter, r *http.Request) {
	items, err := h.sessionExpenseService.GetAllSessionExpenses(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Expenses found", items)
}

// GetSessionExpense godoc
// @Summary Get a session expense
// @Tags SessionExpense
// @Security BearerAuth
// @Param id path int true "Session Expense ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /session-expenses/{id} [get]
func (h *SessionExpenseHandler) GetSessionExpense(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionExpenseService.GetSessionExpenseByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Expense found", item)
}

// CreateSessionExpense godoc
// @Summary Create a session expense
// @Tags SessionExpense
// @Security BearerAuth
// @Param body body services.CreateSessionExpenseInput true "Session Expense"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /session-expenses [post]
func (h *SessionExpenseHandler) CreateSessionExpense(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSessionExpenseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionExpenseService.CreateSessionExpense(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Session Expense created", item)
}

// UpdateSessionExpense godoc
// @Summary Update a session expense
// @Tags SessionExpense
// @Security BearerAuth
// @Param id path int true "Session Expense ID"
// @Param body body services.UpdateSessionExpenseInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /session-expenses/{id} [put]
func (h *SessionExpenseHandler) UpdateSessionExpense(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSessionExpenseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionExpenseService.UpdateSessionExpense(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Expense updated", item)
}

// DeleteSessionExpense godoc
// @Summary Delete a session expense
// @Tags SessionExpense
// @Security BearerAuth
// @Param id path int true "Session Expense ID"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Router /session-expenses/{id} [delete]
func (h *SessionExpenseHandler) DeleteSessionExpense(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sessionExpenseService.DeleteSessionExpense(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Expense deleted", nil)
}
