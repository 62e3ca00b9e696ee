package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brotliTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/", handler)
	return r
}

func requestWithEncoding(t *testing.T, r *gin.Engine, encoding string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if encoding != "" {
		req.Header.Set("Accept-Encoding", encoding)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBrotli_CompressesLargeBody(t *testing.T) {
	body := strings.Repeat("a", 4*brotliMinLength)
	r := brotliTestRouter(func(c *gin.Context) {
		c.String(http.StatusOK, body)
	})

	rec := requestWithEncoding(t, r, "br")

	assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	decoded, err := io.ReadAll(brotli.NewReader(rec.Body))
	require.NoError(t, err)
	assert.Equal(t, body, string(decoded))
}

func TestBrotli_MultiWriteTailStaysCompressed(t *testing.T) {
	head := strings.Repeat("h", 2*brotliMinLength)
	tail := "short tail"
	r := brotliTestRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
		_, err := c.Writer.Write([]byte(head))
		require.NoError(t, err)
		_, err = c.Writer.Write([]byte(tail))
		require.NoError(t, err)
	})

	rec := requestWithEncoding(t, r, "br")

	assert.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	decoded, err := io.ReadAll(brotli.NewReader(rec.Body))
	require.NoError(t, err)
	assert.Equal(t, head+tail, string(decoded))
}

func TestBrotli_SmallBodyPassesThrough(t *testing.T) {
	r := brotliTestRouter(func(c *gin.Context) {
		c.String(http.StatusOK, "tiny")
	})

	rec := requestWithEncoding(t, r, "br")

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "tiny", rec.Body.String())
}

func TestBrotli_SkippedWithoutClientSupport(t *testing.T) {
	body := bytes.Repeat([]byte("b"), 2*brotliMinLength)
	r := brotliTestRouter(func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain", body)
	})

	rec := requestWithEncoding(t, r, "gzip")

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, string(body), rec.Body.String())
}
