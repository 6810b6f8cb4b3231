package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
	"github.com/makerclub/toolroom/internal/service/tool"
)

// toolService defines the minimal interface needed by ToolHandler.
type toolService interface {
	List(ctx context.Context) ([]domain.Tool, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	Create(ctx context.Context, input tool.CreateInput) (*domain.Tool, error)
	Update(ctx context.Context, id uuid.UUID, input tool.UpdateInput) (*domain.Tool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// lifecycleService defines the checkout/return interface needed by ToolHandler.
type lifecycleService interface {
	Checkout(ctx context.Context, toolID uuid.UUID) (*domain.Tool, error)
	Return(ctx context.Context, toolID uuid.UUID) (*domain.Tool, error)
}

// ToolHandler serves the tool registry and lifecycle endpoints.
type ToolHandler struct {
	tools     toolService
	lifecycle lifecycleService
	log       *slog.Logger
}

// NewToolHandler creates a ToolHandler.
func NewToolHandler(tools toolService, lifecycle lifecycleService, logger *slog.Logger) *ToolHandler {
	return &ToolHandler{
		tools:     tools,
		lifecycle: lifecycle,
		log:       logger.With("handler", "tool"),
	}
}

type createToolRequest struct {
	Name string `json:"name"`
}

type updateToolRequest struct {
	Name        *string `json:"name,omitempty"`
	Status      *string `json:"status,omitempty"`
	HolderID    *string `json:"holderId,omitempty"`
	ClearHolder bool    `json:"clearHolder,omitempty"`
}

type toolResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	HolderID   *string   `json:"holderId,omitempty"`
	HolderName *string   `json:"holderName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toToolResponse(t domain.Tool) toolResponse {
	resp := toolResponse{
		ID:         t.ID.String(),
		Name:       t.Name,
		Status:     t.Status.String(),
		HolderName: t.HolderName,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.HolderID != nil {
		id := t.HolderID.String()
		resp.HolderID = &id
	}
	return resp
}

func toToolResponses(tools []domain.Tool) []toolResponse {
	out := make([]toolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, toToolResponse(t))
	}
	return out
}

// List handles GET /tools.
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.tools.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponses(tools))
}

// Get handles GET /tools/{id}.
func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	t, err := h.tools.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(*t))
}

// Create handles POST /tools.
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.tools.Create(r.Context(), tool.CreateInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toToolResponse(*created))
}

// Update handles PUT /tools/{id}.
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	var req updateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := tool.UpdateInput{
		Name:        req.Name,
		ClearHolder: req.ClearHolder,
	}
	if req.Status != nil {
		status := domain.ToolStatus(*req.Status)
		input.Status = &status
	}
	if req.HolderID != nil {
		holder, err := uuid.Parse(*req.HolderID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid holder id")
			return
		}
		input.Holder = &holder
	}

	updated, err := h.tools.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(*updated))
}

// Delete handles DELETE /tools/{id}.
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	if err := h.tools.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Checkout handles POST /tools/{id}/checkout.
func (h *ToolHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	t, err := h.lifecycle.Checkout(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(*t))
}

// Return handles POST /tools/{id}/return.
func (h *ToolHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	t, err := h.lifecycle.Return(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toToolResponse(*t))
}
