package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
)

type followRequest struct {
	TargetEmail string `json:"target_email"`
}

type followCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil || email == "" {
		apperrors.WriteError(w, r, apperrors.New(apperrors.KindValidation, "http/GetUser", "email is required"))
		return
	}

	resp, err := h.svc.VisitUser(r.Context(), email)
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListFollowing(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Following(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListFollowers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Followers(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ToggleFollow переключает подписку. При ошибке фронтенд откатывает кнопку
// по коду ошибки.
func (h *Handlers) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	var in followRequest
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	resp, err := h.svc.ToggleFollow(r.Context(), in.TargetEmail)
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) FollowByCode(w http.ResponseWriter, r *http.Request) {
	var in followCodeRequest
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	resp, err := h.svc.FollowByCode(r.Context(), in.Code)
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Feed(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
