package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/processor"
)

type pageData struct {
	URL     string
	Warning string
	Output  string
}

type summaryRequest struct {
	URL string `json:"url"`
}

type summaryResponse struct {
	VideoID string `json:"video_id"`
	Summary string `json:"summary"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *implServer) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

func (s *implServer) summarizeForm(c *gin.Context) {
	rawURL := strings.TrimSpace(c.PostForm("url"))
	if rawURL == "" {
		c.HTML(http.StatusOK, "index.html", pageData{Warning: processor.BlankURLWarning})
		return
	}

	res, err := s.processor.Summarize(c.Request.Context(), rawURL)
	c.HTML(http.StatusOK, "index.html", pageData{
		URL:    rawURL,
		Output: processor.Render(res, err),
	})
}

func (s *implServer) createSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
			Kind:    processor.KindInput.String(),
			Message: "invalid request body",
		}})
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
			Kind:    processor.KindInput.String(),
			Message: processor.BlankURLWarning,
		}})
		return
	}

	res, err := s.processor.Summarize(c.Request.Context(), rawURL)
	if err != nil {
		kind := processor.KindOf(err)
		c.JSON(statusFor(kind), errorResponse{Error: errorBody{
			Kind:    kind.String(),
			Message: processor.Message(err),
		}})
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		VideoID: res.VideoID,
		Summary: res.Summary,
	})
}

func statusFor(kind processor.Kind) int {
	switch kind {
	case processor.KindInput:
		return http.StatusBadRequest
	case processor.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// requestLogger tags each request context with a request ID and logs the outcome.
func (s *implServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", logger.RequestID(ctx))

		start := time.Now()
		c.Next()

		s.logger.Info(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}
