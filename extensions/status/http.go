package status

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Attach registers the status endpoints on group.
func (s *Status) Attach(group *gin.RouterGroup) {
	group.GET("/healthz", s.healthz)
	group.GET("/status", s.status)
}

// Router returns a gin engine serving /healthz and /status.
func (s *Status) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s.Attach(&r.RouterGroup)
	return r
}

// Serve listens on addr until ctx is done, then shuts the server down.
func (s *Status) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("status listening addr=%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// healthz answers 200 when every shard is ready, 503 otherwise.
func (s *Status) healthz(c *gin.Context) {
	if s.Ready() {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
}

func (s *Status) status(c *gin.Context) {
	c.JSON(http.StatusOK, s.Snapshot())
}
