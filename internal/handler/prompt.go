package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/randorium/randorium-go/internal/middleware"
	"github.com/randorium/randorium-go/internal/model"
	"github.com/randorium/randorium-go/internal/prompt"
	"github.com/randorium/randorium-go/internal/repository"
	"github.com/randorium/randorium-go/internal/service"
)

// PromptHandler handles HTTP requests for writing prompts.
type PromptHandler struct {
	service *service.PromptService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(svc *service.PromptService) *PromptHandler {
	return &PromptHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/prompts/generate requests.
func (h *PromptHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.PromptRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, prompt.ErrGenreTooLong), errors.Is(err, prompt.ErrKeywordsTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, prompt.ErrUpstream), errors.Is(err, prompt.ErrEmptyPrompt):
			writeJSON(w, http.StatusBadGateway, errorResponse("prompt generation failed, please try again"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSave handles POST /api/v1/prompts/saved requests.
func (h *PromptHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.SavePromptRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPromptRequired),
			errors.Is(err, service.ErrPromptTooLong),
			errors.Is(err, prompt.ErrGenreTooLong),
			errors.Is(err, prompt.ErrKeywordsTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeServiceError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/prompts/saved requests.
func (h *PromptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	prompts, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prompts)
}

// HandleDelete handles DELETE /api/v1/prompts/saved/{prompt_id} requests.
func (h *PromptHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "prompt_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPromptID):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, repository.ErrPromptNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeServiceError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
