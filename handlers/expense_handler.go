package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type ExpenseHandler struct {
	expenseService services.ExpenseService
}

func NewExpenseHandler(svc services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: svc}
}

// GetExpenses godoc
// @Summary List expenses
// @Tags Expense
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /expenses [get]
func (h *ExpenseHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	items, err := h.expenseService.GetAllExpenses(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Expenses found", items)
}

// GetExpense godoc
// @Summary Get an expense
// @Tags Expense
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.expenseService.GetExpenseByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Expense found", item)
}

// CreateExpense godoc
// @Summary Create an expense
// @Tags Expense
// @Security BearerAuth
// @Param body body services.CreateExpenseInput true "Expense"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var input services.CreateExpenseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.expenseService.CreateExpense(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Expense created", item)
}

// UpdateExpense godoc
// @Summary Update an expense
// @Tags Expense
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Param body body services.UpdateExpenseInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateExpenseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.expenseService.UpdateExpense(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Expense updated", item)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expense
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.expenseService.DeleteExpense(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Expense deleted", nil)
}
