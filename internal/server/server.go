package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Light-Brands/local-ide-sub000/internal/client"
	"github.com/Light-Brands/local-ide-sub000/internal/config"
	enginehttp "github.com/Light-Brands/local-ide-sub000/internal/http"
	"github.com/Light-Brands/local-ide-sub000/internal/logging"
	"github.com/Light-Brands/local-ide-sub000/internal/middleware"
	"github.com/Light-Brands/local-ide-sub000/internal/monitoring"
	"github.com/Light-Brands/local-ide-sub000/internal/persist"
	"github.com/Light-Brands/local-ide-sub000/internal/scan"
	"github.com/Light-Brands/local-ide-sub000/internal/session"
	"github.com/Light-Brands/local-ide-sub000/internal/workspace"
	"github.com/Light-Brands/local-ide-sub000/internal/ws"
)

// Server wires the engine together: config, logging, metrics, durable
// storage, remote collaborators, the periodic scanner, the workspace
// manager and the HTTP/WS surface.
type Server struct {
	cfg     *config.Config
	log     *logging.Logger
	metrics *monitoring.Metrics
	router  *gin.Engine
	http    *http.Server

	workspace    *workspace.Manager
	store        persist.Store
	scanner      *scan.Scanner
	integrations *client.IntegrationClient
	backend      *client.SessionBackend

	stop chan struct{}
}

// NewServer builds a server from configuration. Nothing talks to the
// network yet; remote collaborators are reached lazily after Run.
func NewServer(cfg *config.Config) (*Server, error) {
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics := monitoring.NewMetrics()
	store := persist.NewFileStore(cfg.Storage.Path)

	var backend *client.SessionBackend
	var chatBackend session.Backend
	if cfg.Backend.Enabled {
		backend = client.NewSessionBackend(cfg.Backend.SessionAddr)
		chatBackend = backend
	}

	wsm := workspace.NewManager(workspace.Options{
		Backend:     chatBackend,
		HomePort:    cfg.Workspace.HomePort,
		MessageTail: cfg.Workspace.MessageTail,
		QueryTail:   cfg.Workspace.QueryTail,
		Logger:      log,
		Metrics:     metrics,
	})

	var scanner *scan.Scanner
	if cfg.Scan.Enabled {
		scanner = scan.NewScanner(scan.Config{
			Host:       cfg.Scan.Host,
			Candidates: cfg.Scan.Ports,
			Timeout:    cfg.Scan.Timeout,
			Schedule:   cfg.Scan.Schedule,
		}, wsm, log)
	}

	integrations := client.NewIntegrationClient(cfg.Backend.IntegrationsAddr, log)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(nil))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	handlers := enginehttp.NewHandlers(wsm, store)
	wsHandler := ws.NewHandler(wsm, log, metrics)
	registerRoutes(router, handlers, wsHandler)

	return &Server{
		cfg:          cfg,
		log:          log,
		metrics:      metrics,
		router:       router,
		workspace:    wsm,
		store:        store,
		scanner:      scanner,
		integrations: integrations,
		backend:      backend,
		stop:         make(chan struct{}),
	}, nil
}

func registerRoutes(r *gin.Engine, h *enginehttp.Handlers, wsh *ws.Handler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/state", h.State)
	r.GET("/state/legacy", h.LegacyState)

	r.POST("/panes/:pane/toggle", h.TogglePane)
	r.PUT("/panes/order", h.ReorderPanes)
	r.PUT("/panes/:pane/width", h.SetPaneWidth)
	r.GET("/panes/:pane/target", h.ResolvePane)
	r.POST("/panes/:pane/container", h.RegisterContainer)
	r.DELETE("/panes/:pane/container", h.UnregisterContainer)

	r.GET("/chats", h.ListChats)
	r.POST("/chats", h.CreateChat)
	r.DELETE("/chats/:id", h.DeleteChat)
	r.POST("/chats/:id/activate", h.ActivateChat)
	r.POST("/chats/:id/messages", h.AppendChatMessage)
	r.PUT("/chats/:id/name", h.RenameChat)

	r.GET("/tabs", h.ListTabs)
	r.POST("/tabs", h.OpenTab)
	r.DELETE("/tabs/:id", h.CloseTab)
	r.POST("/tabs/:id/activate", h.ActivateTab)
	r.PUT("/tabs/:id/meta", h.SetTabMeta)

	r.GET("/ports", h.ListPorts)
	r.POST("/ports/select", h.SelectPort)
	r.POST("/ports/start", h.StartPort)
	r.POST("/ports/stop", h.StopPort)

	r.GET("/mobile", h.MobileState)
	r.POST("/mobile/swipe", h.MobileSwipe)
	r.POST("/mobile/double-tap", h.MobileDoubleTap)
	r.POST("/mobile/step", h.MobileStep)
	r.POST("/mobile/view", h.MobileSetView)
	r.POST("/mobile/tab", h.MobileFocusTab)

	r.POST("/project", h.ObserveProject)
	r.POST("/project/reset", h.ResetProject)

	r.POST("/files/open", h.OpenFile)
	r.POST("/files/close", h.CloseFile)
	r.POST("/files/dirty", h.MarkFileDirty)
	r.POST("/queries", h.RecordQuery)

	r.GET("/settings", h.GetSettings)
	r.PUT("/settings", h.UpdateSettings)
	r.POST("/onboarding/complete", h.CompleteOnboarding)
	r.GET("/integrations", h.GetIntegrations)
	r.POST("/deploy/target", h.SelectDeployTarget)

	r.POST("/snapshot/save", h.SaveSnapshot)
	r.POST("/snapshot/restore", h.RestoreSnapshot)

	r.GET("/stream", wsh.HandleConnection)
}

// Run starts background work and serves HTTP until Shutdown.
func (s *Server) Run() error {
	// Hydration is asynchronous relative to first render; the default empty
	// state is served until it completes.
	go s.hydrate()

	if s.scanner != nil {
		if err := s.scanner.Start(); err != nil {
			return fmt.Errorf("start scanner: %w", err)
		}
	}
	go s.refreshIntegrations()
	go s.reconcileSessions()
	go s.autosave()

	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.http = &http.Server{Addr: addr, Handler: s.router}
	s.log.Info("engine listening", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) hydrate() {
	snap, found, err := s.store.Load()
	if err != nil {
		s.log.Warn("snapshot load failed, starting fresh", zap.Error(err))
		s.workspace.Hydrate(nil)
		return
	}
	if !found {
		s.log.Info("no snapshot found, fresh install")
		s.workspace.Hydrate(nil)
		return
	}
	s.workspace.Hydrate(snap)
	s.log.Info("workspace hydrated",
		zap.Int("version", snap.Version),
		zap.Time("saved_at", snap.SavedAt))
}

func (s *Server) refreshIntegrations() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	status := s.integrations.Status(ctx)
	cancel()
	s.workspace.SetIntegrations(status)
}

func (s *Server) reconcileSessions() {
	if s.backend == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	remote, err := s.backend.ListSessions(ctx)
	if err != nil {
		s.log.Debug("session backend listing degraded", zap.Error(err))
		return
	}
	s.workspace.ReconcileChats(remote)
}

func (s *Server) autosave() {
	ticker := time.NewTicker(s.cfg.Workspace.AutosaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.save()
		case <-s.stop:
			return
		}
	}
}

func (s *Server) save() {
	if err := s.store.Save(s.workspace.Snapshot()); err != nil {
		s.log.Warn("autosave failed", zap.Error(err))
		return
	}
	s.metrics.SnapshotsSaved.Inc()
}

// Shutdown stops background work, writes a final snapshot and drains HTTP.
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stop)
	if s.scanner != nil {
		s.scanner.Stop()
	}
	s.save()

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			return err
		}
	}
	return s.log.Sync()
}
