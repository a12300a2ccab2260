package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type SessionPlayerHandler struct {
	sessionPlayerService services.SessionPlayerService
}

func NewSessionPlayerHandler(svc services.SessionPlayerService) *SessionPlayerHandler {
	return &SessionPlayerHandler{sessionPlayerService: svc}
}

// GetSessionPlayers godoc
// @Summary List session players
// @Tags SessionPlayer
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /session-player [get]
func (h *SessionPlayerHandler) GetSessionPlayers(w http.ResponseWriter, r *http.Request) {
	items, err := h.sessionPlayerService.GetAllSessionPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Players found", items)
}

// GetSessionPlayer godoc
// @Summary Get a session player
// @Tags SessionPlayer
// @Security BearerAuth
// @Param id path int true "Session Player ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /session-player/{id} [get]
func (h *SessionPlayerHandler) GetSessionPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionPlayerService.GetSessionPlayerByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Player found", item)
}

// CreateSessionPlayer godoc
// @Summary Create a session player
// @Tags SessionPlayer
// @Security BearerAuth
// @Param body body services.CreateSessionPlayerInput true "Session Player"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /session-player [post]
func (h *SessionPlayerHandler) CreateSessionPlayer(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSessionPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionPlayerService.CreateSessionPlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Session Player created", item)
}

// UpdateSessionPlayer godoc
// @Summary Update a session player
// @Tags SessionPlayer
// @Security BearerAuth
// @Param id path int true "Session Player ID"
// @Param body body services.UpdateSessionPlayerInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /session-player/{id} [put]
func (h *SessionPlayerHandler) UpdateSessionPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSessionPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.sessionPlayerService.UpdateSessionPlayer(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Player updated", item)
}

// DeleteSessionPlayer godoc
// @Summary Delete a session player
// @Tags SessionPlayer
// @Security BearerAuth
// @Param id path int true "Session Player ID"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Router /session-player/{id} [delete]
func (h *SessionPlayerHandler) DeleteSessionPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sessionPlayerService.DeleteSessionPlayer(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Session Player deleted", nil)
}
