package directory

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/reports"
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
	response.OK(c, http.StatusCreated, "Directory entry created", gin.H{"id": id.String()})
}

func (h *Handler) List(c *gin.Context) {
	p, err := response.ParsePagination(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	f := Filter{
		City:           c.Query("city"),
		Profession:     c.Query("profession"),
		Caste:          c.Query("caste"),
		Province:       c.Query("province"),
		Gender:         c.Query("gender"),
		MembershipType: c.Query("membership_type"),
	}

	entries, total, err := h.svc.List(f, p.Offset(), p.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Directory entries retrieved successfully", entries, total, p)
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
	response.OK(c, http.StatusOK, "Directory entry updated", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Directory entry deleted", nil)
}

func (h *Handler) Count(c *gin.Context) {
	total, err := h.svc.Count()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Total directory entries count", gin.H{"total": total})
}

func (h *Handler) CommunityStrength(c *gin.Context) {
	strength, err := h.svc.CommunityStrength()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, "Community strength calculated successfully", gin.H{
		"community_strength": strength,
	})
}

func (h *Handler) ExportCSV(c *gin.Context)   { h.export(c, reports.FormatCSV) }
func (h *Handler) ExportPDF(c *gin.Context)   { h.export(c, reports.FormatPDF) }
func (h *Handler) ExportExcel(c *gin.Context) { h.export(c, reports.FormatExcel) }

func (h *Handler) export(c *gin.Context, format string) {
	data, filename, contentType, err := h.svc.Export(format)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
