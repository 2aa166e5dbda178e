package response

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	p, err := ParsePagination(ctxWithQuery(""))
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 1, Limit: 10}, p)
}

func TestParsePagination(t *testing.T) {
	p, err := ParsePagination(ctxWithQuery("page=3&limit=25"))
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 3, Limit: 25}, p)
	assert.Equal(t, 50, p.Offset())
}

func TestParsePaginationRejects(t *testing.T) {
	for _, query := range []string{"page=0", "page=-1", "page=abc", "limit=0", "limit=101", "limit=xyz"} {
		_, err := ParsePagination(ctxWithQuery(query))
		assert.Error(t, err, "query %q", query)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 90, Pagination{Page: 10, Limit: 10}.Offset())
}
