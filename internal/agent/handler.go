package agent

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/response"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Chat handles POST /agent/chat.
func (h *Handler) Chat(c *gin.Context) {
	var in ChatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperror.Validation("body", "invalid JSON payload"))
		return
	}

	result, err := h.svc.Chat(in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Conversations handles GET /agent/conversations. Admin only.
func (h *Handler) Conversations(c *gin.Context) {
	sessionID := c.Query("session_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	convs, err := h.svc.Conversations(sessionID, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Conversations fetched successfully", convs)
}

// GetStats handles GET /agent/conversations/stats. Admin only.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Conversation stats fetched successfully", stats)
}
