// Package server publishes portfolio data over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/verte-zerg/folio/internal/logger"
	"github.com/verte-zerg/folio/internal/model"
)

const shutdownTimeout = 5 * time.Second

// New builds the router serving content.
func New(content Content, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	portfolio := func(c *gin.Context) {
		c.JSON(http.StatusOK, content.Portfolio)
	}
	r.GET("/api/portfolio", portfolio)
	r.GET("/data/portfolio-data.json", portfolio)

	listing := content.listing()
	r.GET("/api/blog", func(c *gin.Context) {
		c.JSON(http.StatusOK, listing)
	})
	r.GET("/api/blog/:slug", func(c *gin.Context) {
		post, ok := content.post(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusOK, model.BlogArticle{Title: post.Title, Content: post.Content})
	})
	return r
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("serving portfolio", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func requestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log, id := logger.WithRequestID(base)
		c.Header("X-Request-ID", id)
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
