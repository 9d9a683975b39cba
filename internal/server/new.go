package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/processor"
)

//go:embed templates/index.html
var templatesFS embed.FS

type implServer struct {
	addr      string
	processor processor.Processor
	logger    logger.Logger
	engine    *gin.Engine
}

// New creates a Server that answers on addr.
func New(addr string, proc processor.Processor, log logger.Logger) Server {
	s := &implServer{
		addr:      addr,
		processor: proc,
		logger:    log,
	}
	s.engine = s.routes()
	return s
}

func (s *implServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/index.html")))

	r.GET("/", s.index)
	r.POST("/summarize", s.summarizeForm)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	apiV1 := r.Group("/api/v1")
	apiV1.Use(cors.Default())
	{
		apiV1.POST("/summaries", s.createSummary)
	}

	return r
}

func (s *implServer) Handler() http.Handler {
	return s.engine
}
