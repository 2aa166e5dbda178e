package response

import (
	"github.com/gin-gonic/gin"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

// APIResponse is the envelope for single-object and write responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedResponse is the envelope for paged list responses.
type PaginatedResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Message: message, Data: data})
}

func Paginated(c *gin.Context, message string, data interface{}, total int64, p Pagination) {
	c.JSON(200, PaginatedResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	})
}

// Fail renders an error with the taxonomy's status code and a
// human-readable detail, matching the API's error contract.
func Fail(c *gin.Context, err error) {
	c.JSON(apperror.Status(err), gin.H{"detail": err.Error()})
}

// Abort is Fail for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperror.Status(err), gin.H{"detail": err.Error()})
}
