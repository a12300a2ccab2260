package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type SessionHandler struct {
	sessionService services.SessionService
}

func NewSessionHandler(ss services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: ss}
}

// GetSessions godoc
// @Summary List sessions
// @Tags Session
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /sessions [get]
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.GetAllSessions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Sessions found", sessions)
}

// GetSession godoc
// @Summary Get a session with its players, discounts and expenses
// @Tags Session
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	details, err := h.sessionService.GetSessionByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session found", details)
}

// CreateSessions godoc
// @Summary Create a batch of sessions in one transaction
// @Tags Session
// @Security BearerAuth
// @Param body body []services.CreateSessionInput true "Sessions with line items"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 500 {object} envelope
// @Router /sessions [post]
func (h *SessionHandler) CreateSessions(w http.ResponseWriter, r *http.Request) {
	var inputs []services.CreateSessionInput
	if err := readJSON(w, r, &inputs); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(inputs); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	created, err := h.sessionService.CreateSessions(r.Context(), inputs)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Session created", created)
}

// UpdateSession godoc
// @Summary Update a session
// @Tags Session
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param body body services.UpdateSessionInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /sessions/{id} [put]
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSessionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.sessionService.UpdateSession(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session updated", session)
}

// DeleteSession godoc
// @Summary Delete a session and its line items
// @Tags Session
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} envelope
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session deleted", nil)
}
