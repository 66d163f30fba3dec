package messages

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"guestdesk-backend/internal/llm"
	"guestdesk-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches message routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/messages/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	req.Task = strings.TrimSpace(req.Task)
	req.Text = strings.TrimSpace(req.Text)
	if req.Task == "" || req.Text == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "task and text are required", nil)
		return
	}

	c.Set("task", req.Task)
	if req.MessageID != "" {
		c.Set("messageId", req.MessageID)
	}

	resp, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, ErrorCodeConfiguration, "completion service credential is not configured", nil)
		case errors.Is(err, ErrStore):
			respond.Error(c, http.StatusInternalServerError, ErrorCodeStore, err.Error(), nil)
		case errors.As(err, &upstream):
			respond.Error(c, http.StatusBadGateway, ErrorCodeUpstream, "completion service request failed", gin.H{
				"status": upstream.Status,
				"body":   upstream.Body,
			})
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "analysis failed", err.Error())
		}
		return
	}

	respond.OK(c, resp)
}
