package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"news_api/internal/metrics"
	"news_api/internal/service"
)

type Handler struct {
	articles ArticleService
	comments CommentService
	catalog  CatalogService
	db       Pinger
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// jsonBody lets the service layer decode the request body only after its
// existence checks have passed.
type jsonBody struct {
	c *gin.Context
}

func (b jsonBody) Bind(dst any) error {
	return b.c.ShouldBindWith(dst, binding.JSON)
}

// GET /api/articles/:article_id
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.articles.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GET /api/articles?sort_by=&order=&topic=
func (h *Handler) ListArticles(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context(), service.ListArticlesParams{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Topic:  c.Query("topic"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// PATCH /api/articles/:article_id  {"inc_votes": n}
func (h *Handler) PatchArticleVotes(c *gin.Context) {
	article, err := h.articles.AdjustVotes(c.Request.Context(), c.Param("article_id"), jsonBody{c})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GET /api/articles/:article_id/comments
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.comments.ListByArticle(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// POST /api/articles/:article_id/comments  {"body": "...", "author": "..."}
func (h *Handler) PostComment(c *gin.Context) {
	comment, err := h.comments.Add(c.Request.Context(), c.Param("article_id"), jsonBody{c})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DELETE /api/comments/:comment_id
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.comments.Delete(c.Request.Context(), c.Param("comment_id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTopics(c *gin.Context) {
	topics, err := h.catalog.Topics(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.catalog.Users(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) Health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
