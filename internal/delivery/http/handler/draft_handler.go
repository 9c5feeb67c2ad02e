package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"therapy-booking-service/internal/delivery/dto"
	"therapy-booking-service/internal/usecase"
	"therapy-booking-service/pkg/response"

	"github.com/gorilla/mux"
)

type DraftHandler struct {
	draftUsecase usecase.DraftUsecase
}

func NewDraftHandler(draftUsecase usecase.DraftUsecase) *DraftHandler {
	return &DraftHandler{
		draftUsecase: draftUsecase,
	}
}

func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req dto.SaveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	scheduled, err := h.draftUsecase.SaveDraft(r.Context(), key, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save draft")
		return
	}

	if scheduled {
		response.Success(w, http.StatusAccepted, "Draft save scheduled", nil)
		return
	}
	response.Success(w, http.StatusOK, "Draft saved", nil)
}

func (h *DraftHandler) RestoreDraft(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	draft, err := h.draftUsecase.RestoreDraft(r.Context(), key)
	if err != nil {
		if errors.Is(err, usecase.ErrDraftNotFound) {
			response.NotFound(w, "Draft not found")
			return
		}
		response.InternalServerError(w, "Failed to restore draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft restored", draft)
}

func (h *DraftHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := h.draftUsecase.DiscardDraft(r.Context(), key); err != nil {
		response.InternalServerError(w, "Failed to discard draft")
		return
	}

	response.Success(w, http.StatusOK, "Draft discarded", nil)
}
