package handlers

import (
	"net/http"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/service"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Profile(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in service.ProfileInput
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	resp, err := h.svc.SaveProfile(r.Context(), in)
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Rate(w http.ResponseWriter, r *http.Request) {
	var in service.RatingInput
	if err := decodeStrict(r, &in); err != nil {
		apperrors.WriteError(w, r, errInvalidBody())
		return
	}

	resp, err := h.svc.Rate(r.Context(), in)
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DevRefill(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.DevRefill(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog(r.Context(), r.URL.Query().Get("q")))
}

func (h *Handlers) ListCollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Collections(r.Context()))
}

func (h *Handlers) Shuffle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Shuffle(r.Context())
	if err != nil {
		apperrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
