package auth

import (
	"net/http"

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

// CurrentUser pulls the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (*User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*User)
	return user, ok
}

func (h *Handler) Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperror.Validation("body", "invalid JSON payload"))
		return
	}

	userID, err := h.svc.Register(in)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "User registered successfully", gin.H{
		"user_id": userID.String(),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperror.Validation("body", "invalid JSON payload"))
		return
	}

	token, err := h.svc.Login(in)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Fail(c, apperror.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateMeInput struct {
	FullName string `json:"full_name"`
}

func (h *Handler) UpdateMe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Fail(c, apperror.ErrUnauthenticated)
		return
	}

	var in updateMeInput
	if err := c.ShouldBindJSON(&in); err != nil || in.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No data provided for update"})
		return
	}

	if err := h.svc.UpdateProfile(user.ID, in.FullName); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "User information updated successfully", nil)
}

func (h *Handler) ListUsers(c *gin.Context) {
	p, err := response.ParsePagination(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	users, total, err := h.svc.ListUsers(p.Offset(), p.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Users retrieved successfully", users, total, p)
}

func (h *Handler) ActivateUser(c *gin.Context) {
	if err := h.svc.SetActive(c.Param("id"), true); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "User account activated successfully", nil)
}

func (h *Handler) DeactivateUser(c *gin.Context) {
	if err := h.svc.SetActive(c.Param("id"), false); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "User account deactivated successfully", nil)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Authentication statistics", stats)
}
