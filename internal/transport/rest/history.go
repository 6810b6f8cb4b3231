package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/makerclub/toolroom/internal/domain"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	List(ctx context.Context) ([]domain.HistoryRecord, error)
}

// HistoryHandler serves the checkout ledger.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyResponse struct {
	ID           string     `json:"id"`
	ToolID       string     `json:"toolId"`
	ToolName     string     `json:"toolName"`
	UserID       string     `json:"userId"`
	UserName     string     `json:"userName"`
	CheckedOutAt time.Time  `json:"checkedOutAt"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
}

// List handles GET /history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]historyResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, historyResponse{
			ID:           rec.ID.String(),
			ToolID:       rec.ToolID.String(),
			ToolName:     rec.ToolName,
			UserID:       rec.UserID.String(),
			UserName:     rec.UserName,
			CheckedOutAt: rec.CheckedOutAt,
			ReturnedAt:   rec.ReturnedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
