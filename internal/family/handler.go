package family

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

	id, totalMembers, err := h.svc.Create(in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, "Family directory entry created successfully", gin.H{
		"id":            id.String(),
		"total_members": totalMembers,
	})
}

func (h *Handler) List(c *gin.Context) {
	p, err := response.ParsePagination(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	f := Filter{
		City:           c.Query("city"),
		Caste:          c.Query("caste"),
		Province:       c.Query("province"),
		District:       c.Query("district"),
		MembershipType: c.Query("membership_type"),
	}
	if raw := c.Query("min_members"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Fail(c, apperror.Validation("min_members", "must be a non-negative integer"))
			return
		}
		f.MinMembers = n
	}
	if raw := c.Query("max_members"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Fail(c, apperror.Validation("max_members", "must be a non-negative integer"))
			return
		}
		f.MaxMembers = n
	}

	entries, total, err := h.svc.List(f, p.Offset(), p.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Family directories retrieved successfully", entries, total, p)
}

func (h *Handler) Get(c *gin.Context) {
	entry, err := h.svc.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) Update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperror.Validation("body", "invalid JSON payload"))
		return
	}

	if err := h.svc.Update(c.Param("id"), in); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Family directory entry updated successfully", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Family directory entry deleted successfully", nil)
}

func (h *Handler) TotalPopulation(c *gin.Context) {
	total, err := h.svc.TotalPopulation()
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_population": total})
}

func (h *Handler) CasteStats(c *gin.Context) {
	result, err := h.svc.CasteStats()
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          "Caste statistics retrieved successfully",
		"data":             result.Stats,
		"total_families":   result.TotalFamilies,
		"total_population": result.TotalPopulation,
	})
}
