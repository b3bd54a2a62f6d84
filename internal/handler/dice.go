package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/randorium/randorium-go/internal/dice"
	"github.com/randorium/randorium-go/internal/middleware"
	"github.com/randorium/randorium-go/internal/model"
	"github.com/randorium/randorium-go/internal/service"
)

// DiceHandler handles HTTP requests for dice rolling.
type DiceHandler struct {
	service *service.DiceService
}

// NewDiceHandler creates a new DiceHandler.
func NewDiceHandler(svc *service.DiceService) *DiceHandler {
	return &DiceHandler{service: svc}
}

// HandleListDice handles GET /api/v1/dice requests.
func (h *DiceHandler) HandleListDice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.StandardDice())
}

// HandleRoll handles POST /api/v1/dice/roll requests. Rolls of signed in
// users are saved to their history.
func (h *DiceHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	var req model.RollRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	resp, err := h.service.Roll(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, dice.ErrInvalidDiceType) || errors.Is(err, dice.ErrInvalidDiceCount) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleHistory handles GET /api/v1/dice/history?limit=N requests.
func (h *DiceHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be a positive integer"))
			return
		}
		limit = n
	}

	rolls, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rolls)
}

// HandleClearHistory handles DELETE /api/v1/dice/history requests.
func (h *DiceHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	deleted, err := h.service.ClearHistory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrStorageUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
