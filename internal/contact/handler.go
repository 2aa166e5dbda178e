package contact

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

func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperror.Validation("body", "invalid JSON payload"))
		return
	}

	id, err := h.svc.Create(in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "Contact message submitted successfully", gin.H{"id": id.String()})
}

func (h *Handler) List(c *gin.Context) {
	p, err := response.ParsePagination(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var isRead *bool
	if raw := c.Query("is_read"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Fail(c, apperror.Validation("is_read", "must be true or false"))
			return
		}
		isRead = &parsed
	}

	messages, total, err := h.svc.List(isRead, p.Offset(), p.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Contact messages retrieved successfully", messages, total, p)
}

func (h *Handler) Get(c *gin.Context) {
	msg, err := h.svc.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.svc.SetRead(c.Param("id"), true); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Message marked as read", nil)
}

func (h *Handler) MarkUnread(c *gin.Context) {
	if err := h.svc.SetRead(c.Param("id"), false); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Message marked as unread", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Contact message deleted", nil)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Contact message statistics", stats)
}
