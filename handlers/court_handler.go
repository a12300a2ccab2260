package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
)

type CourtHandler struct {
	courtService services.CourtService
}

func NewCourtHandler(svc services.CourtService) *CourtHandler {
	return &CourtHandler{courtService: svc}
}

// GetCourts godoc
// @Summary List courts
// @Tags Court
// @Security BearerAuth
// @Success 200 {object} envelope
// @Router /courts [get]
func (h *CourtHandler) GetCourts(w http.ResponseWriter, r *http.Request) {
	items, err := h.courtService.GetAllCourts(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Courts found", items)
}

// GetCourt godoc
// @Summary Get a court
// @Tags Court
// @Security BearerAuth
// @Param id path int true "Court ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /courts/{id} [get]
func (h *CourtHandler) GetCourt(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.courtService.GetCourtByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Court found", item)
}

// CreateCourt godoc
// @Summary Create a court
// @Tags Court
// @Security BearerAuth
// @Param body body services.CreateCourtInput true "Court"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /courts [post]
func (h *CourtHandler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCourtInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.courtService.CreateCourt(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusCreated, "Court created", item)
}

// UpdateCourt godoc
// @Summary Update a court
// @Tags Court
// @Security BearerAuth
// @Param id path int true "Court ID"
// @Param body body services.UpdateCourtInput true "Fields to change"
// @Success 200 {object} envelope
// @Router /courts/{id} [put]
func (h *CourtHandler) UpdateCourt(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateCourtInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.courtService.UpdateCourt(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Court updated", item)
}

// DeleteCourt godoc
// @Summary Delete a court
// @Tags Court
// @Security BearerAuth
// @Param id path int true "Court ID"
// @Success 200 {object} envelope
// @Failure 409 {object} envelope
// @Router /courts/{id} [delete]
func (h *CourtHandler) DeleteCourt(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.courtService.DeleteCourt(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Court deleted", nil)
}

const maxCourtImageSize = 5 << 20

// UploadCourtImage godoc
// @Summary Upload a court image
// @Tags Court
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path int true "Court ID"
// @Param image formData file true "Image, up to 5 MB"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 503 {object} envelope
// @Router /courts/{id}/image [post]
func (h *CourtHandler) UploadCourtImage(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCourtImageSize+1024)
	if err := r.ParseMultipartForm(maxCourtImageSize); err != nil {
		errorResponse(w, r, http.StatusBadRequest, "Image must not be larger than 5 MB")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "Invalid: image is required")
		return
	}
	defer file.Close()

	if header.Size > maxCourtImageSize {
		errorResponse(w, r, http.StatusBadRequest, "Image must not be larger than 5 MB")
		return
	}

	court, err := h.courtService.UploadCourtImage(r.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Court image uploaded", court)
}
