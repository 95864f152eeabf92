package scan

import (
	"fmt"
	"net"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Light-Brands/local-ide-sub000/internal/logging"
)

// Sink receives each completed scan as a full snapshot of listening ports,
// never a delta.
type Sink interface {
	ReconcilePorts(listening []int)
}

// Config controls the periodic scan.
type Config struct {
	Host       string
	Candidates []int
	Timeout    time.Duration
	Schedule   string // cron spec, e.g. "@every 5s"
}

// Scanner periodically probes a candidate port list on the local host and
// feeds complete snapshots to its sink. Probe failures are just closed
// ports; the scan itself never errors.
type Scanner struct {
	cfg  Config
	sink Sink
	cron *cron.Cron
	log  *logging.Logger
}

// NewScanner creates a scanner. The sink is required.
func NewScanner(cfg Config, sink Sink, log *logging.Logger) *Scanner {
	if log == nil {
		log = logging.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 250 * time.Millisecond
	}
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	return &Scanner{cfg: cfg, sink: sink, log: log}
}

// Start schedules the periodic scan and runs one immediately so the registry
// is warm before the first tick.
func (s *Scanner) Start() error {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(s.cfg.Schedule, s.scan); err != nil {
		return fmt.Errorf("schedule scan: %w", err)
	}
	s.cron = c
	c.Start()
	go s.scan()
	return nil
}

// Stop halts the schedule; an in-flight scan finishes on its own.
func (s *Scanner) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scanner) scan() {
	listening := make([]int, 0, len(s.cfg.Candidates))
	for _, port := range s.cfg.Candidates {
		addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", port))
		conn, err := net.DialTimeout("tcp", addr, s.cfg.Timeout)
		if err != nil {
			continue
		}
		conn.Close()
		listening = append(listening, port)
	}
	s.log.Debug("port scan complete", zap.Ints("listening", listening))
	s.sink.ReconcilePorts(listening)
}
