package httpapi

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"news_api/internal/metrics"
)

//go:embed endpoints.json
var endpointsJSON []byte

type Deps struct {
	Articles ArticleService
	Comments CommentService
	Catalog  CatalogService
	DB       Pinger
	Metrics  *metrics.Metrics
	// MetricsPath defaults to /metrics when Metrics is set.
	MetricsPath string
	Logger      *slog.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	// Payloads with unexpected keys are rejected, e.g. "user" instead of "author".
	binding.EnableDecoderDisallowUnknownFields = true

	h := &Handler{
		articles: deps.Articles,
		comments: deps.Comments,
		catalog:  deps.Catalog,
		db:       deps.DB,
		metrics:  deps.Metrics,
		logger:   deps.Logger.With("component", "http"),
	}

	r := gin.New()
	r.Use(requestLogger(h.logger))
	r.Use(gin.CustomRecovery(h.handlePanic))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, deps.Metrics.Handler())
	}

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.GET("", h.Endpoints)
		api.GET("/topics", h.ListTopics)
		api.GET("/users", h.ListUsers)

		articles := api.Group("/articles")
		articles.GET("", h.ListArticles)
		articles.GET("/:article_id", h.GetArticle)
		articles.PATCH("/:article_id", h.PatchArticleVotes)
		articles.GET("/:article_id/comments", h.ListComments)
		articles.POST("/:article_id/comments", h.PostComment)

		api.DELETE("/comments/:comment_id", h.DeleteComment)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Route not found"})
	})

	return r
}

func (h *Handler) Endpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpointsJSON)})
}
