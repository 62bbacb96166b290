// Package server runs the fsb chat server: a TCP listener, one session
// per connection and a hub that fans chat lines out to online members.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"

	"golang.org/x/time/rate"

	"github.com/fsbteam/chat/internal/domain"
	"github.com/fsbteam/chat/internal/log"
)

// ShutdownNotice is broadcast to every session before the server closes.
const ShutdownNotice = "Closing server..."

// Config holds server tunables.
type Config struct {
	ListenAddr  string
	RateLimit   rate.Limit // chat lines per second per session
	RateBurst   int
	HistorySize int    // messages replayed by /open
	ClockMode   string // display_time mode for chat line stamps
}

// DefaultConfig mirrors the configuration defaults.
var DefaultConfig = Config{
	ListenAddr:  ":7777",
	RateLimit:   5,
	RateBurst:   10,
	HistorySize: 20,
	ClockMode:   "24h",
}

// ConfigFrom reads server settings from a configuration map, keeping the
// defaults for missing or malformed values.
func ConfigFrom(values map[string]string) Config {
	cfg := DefaultConfig
	if v := values["listen_addr"]; v != "" {
		cfg.ListenAddr = v
	}
	if v, err := strconv.ParseFloat(values["rate_limit"], 64); err == nil && v > 0 {
		cfg.RateLimit = rate.Limit(v)
	}
	if v, err := strconv.Atoi(values["rate_burst"]); err == nil && v > 0 {
		cfg.RateBurst = v
	}
	if v, err := strconv.Atoi(values["history_size"]); err == nil && v >= 0 {
		cfg.HistorySize = v
	}
	if v := values["display_time"]; v != "" {
		cfg.ClockMode = v
	}
	return cfg
}

// Server accepts chat connections and owns the shared hub.
type Server struct {
	store domain.ChatStore
	cfg   Config
	hub   *Hub
	log   *log.Logger

	wg sync.WaitGroup
}

// New creates a server over store. A nil logger disables logging.
func New(store domain.ChatStore, cfg Config, logger *log.Logger) *Server {
	return &Server{
		store: store,
		cfg:   cfg,
		hub:   NewHub(),
		log:   logger.Named("server"),
	}
}

// Hub returns the registry of online sessions.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe listens on the configured address and serves until ctx
// is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.ListenAddr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then
// broadcasts ShutdownNotice, closes every session and waits for them.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info("listening on %s", ln.Addr())

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	var serveErr error
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
				serveErr = fmt.Errorf("accept: %w", err)
			}
			break
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.ServeConn(ctx, conn)
		}()
	}

	s.hub.Broadcast(ShutdownNotice)
	s.hub.CloseAll()
	s.wg.Wait()
	s.log.Info("server closed")
	return serveErr
}

// ServeConn runs one session over conn and returns when it disconnects.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) {
	sess := newSession(s, conn)
	s.hub.Add(sess)
	defer s.hub.Remove(sess)

	sess.run(ctx)
}
