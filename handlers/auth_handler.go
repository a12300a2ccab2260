package handlers

import (
	"net/http"

	"github.com/Dosada05/court-booking/services"
	"github.com/Dosada05/court-booking/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Log in with username and password
// @Tags Auth
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} envelope
// @Failure 401 {object} envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.authService.Login(r.Context(), input, utils.NormalizeIP(r.RemoteAddr))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Login success", result)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Tags Auth
// @Param body body services.RefreshTokenInput true "Refresh token"
// @Success 200 {object} envelope
// @Failure 403 {object} envelope
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var input services.RefreshTokenInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token, err := h.authService.RefreshAccessToken(r.Context(), input.RefreshToken)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Refresh token success", map[string]string{"token": token})
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags Auth
// @Param body body services.RefreshTokenInput true "Refresh token"
// @Success 200 {object} envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var input services.RefreshTokenInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.Logout(r.Context(), input.RefreshToken); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Logout success", true)
}

// ForgotPassword godoc
// @Summary Email a password reset link
// @Tags Auth
// @Param body body services.ForgotPasswordInput true "Email"
// @Success 200 {object} envelope
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var input services.ForgotPasswordInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), input.Email); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "If the email is registered, a reset link has been sent", nil)
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags Auth
// @Param body body services.ResetPasswordInput true "Token and new password"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var input services.ResetPasswordInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := validateInput(&input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	successResponse(w, r, http.StatusOK, "Password has been reset", nil)
}
