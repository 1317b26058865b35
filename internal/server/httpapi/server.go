// Package httpapi exposes the record store over REST with gin. Every
// collection gets GET/POST on /<entity> and GET/PUT/DELETE on
// /<entity>/:id; GET /ping answers health checks.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"github.com/dmitrijs2005/hrconsole/internal/server/records"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address  string
	store    Records
	logger   logging.Logger
	shutdown time.Duration
	engine   *gin.Engine
}

func NewServer(address string, store Records, l logging.Logger, shutdownTimeout time.Duration) *Server {
	s := &Server{
		address:  address,
		store:    store,
		logger:   l.With("module", "http_server"),
		shutdown: shutdownTimeout,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/ping", Ping)
	for _, entity := range records.Collections {
		NewCollectionHandler(entity, s.store, s.logger).Register(r)
	}
	return r
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		stopped <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
