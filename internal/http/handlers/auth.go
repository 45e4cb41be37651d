package handlers

import (
	"net/http"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type confirmRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Session())
}

func (h *Handlers) RefreshSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Refresh(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	if err := h.svc.SignUp(r.Context(), in.Email, in.Password); err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, statusResponse{Status: "confirmation_required"})
}

func (h *Handlers) ConfirmSignUp(w http.ResponseWriter, r *http.Request) {
	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	if err := h.svc.ConfirmSignUp(r.Context(), in.Email, in.Code); err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "confirmed"})
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	resp, err := h.svc.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SignOut отвечает 200 даже при сбое очистки хранилища: сессия в памяти уже сброшена.
func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	resp, _ := h.svc.SignOut(r.Context())
	writeJSON(w, http.StatusOK, resp)
}
