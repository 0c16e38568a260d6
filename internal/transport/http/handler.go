package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ewasteheroes/carbobot/internal/domain"
	"github.com/ewasteheroes/carbobot/internal/service"
)

// defaultSessionID is used when a chat request carries no sessionId.
const defaultSessionID = "default"

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
	model   string
}

// NewHandler creates a new handler. model is reported by the health endpoint.
func NewHandler(svc *service.Service, model string) *Handler {
	return &Handler{
		service: svc,
		model:   model,
	}
}

// RegisterRoutes registers chat routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/chat", h.Chat)
	e.GET("/api/chat/history/:sessionId", h.GetHistory)
	e.DELETE("/api/chat/history/:sessionId", h.ClearHistory)

	e.GET("/health", h.Health)
}

// Chat processes one chat message.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Message is required",
			Message: "Lütfen bir mesaj girin.",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Message is required",
			Message: "Lütfen bir mesaj girin.",
		})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	res := h.service.Chat(c.Request().Context(), sessionID, req.Message, domain.SurfaceWeb)

	return c.JSON(http.StatusOK, domain.ChatResponse{
		Success:    true,
		Message:    res.Reply,
		Intent:     res.Recognition.Intent,
		Confidence: res.Recognition.Confidence,
		Timestamp:  isoNow(),
	})
}

// GetHistory returns a session's conversation history.
// GET /api/chat/history/:sessionId
func (h *Handler) GetHistory(c echo.Context) error {
	sessionID := c.Param("sessionId")

	history, err := h.service.History(c.Request().Context(), sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "History unavailable",
			Message: "Konuşma geçmişi alınamadı.",
		})
	}
	if history == nil {
		history = []domain.Turn{}
	}

	return c.JSON(http.StatusOK, domain.HistoryResponse{
		Success: true,
		History: history,
		Count:   len(history),
	})
}

// ClearHistory removes a session's conversation history.
// DELETE /api/chat/history/:sessionId
func (h *Handler) ClearHistory(c echo.Context) error {
	sessionID := c.Param("sessionId")

	if err := h.service.ClearHistory(c.Request().Context(), sessionID); err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Clear failed",
			Message: "Konuşma geçmişi temizlenemedi.",
		})
	}

	return c.JSON(http.StatusOK, domain.ClearResponse{
		Success: true,
		Message: "Konuşma geçmişi temizlendi.",
	})
}

// Health returns health status.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.HealthResponse{
		Status:    "ok",
		Service:   "CarboBot API",
		Model:     h.model,
		Timestamp: isoNow(),
	})
}

// isoNow formats the current time the way the web frontend expects,
// millisecond precision with a trailing Z.
func isoNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
