package l10n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultPollInterval is the reload cadence used when none is configured.
const DefaultPollInterval = 2 * time.Second

// Poller re-checks the active language's documents on a fixed interval and
// re-runs the load path when their fingerprints change. It is opt-in, started
// explicitly, and stops cleanly, waiting for a running tick to finish.
type Poller struct {
	loader   *Loader
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewPoller builds a poller over the loader. A non-positive interval falls
// back to DefaultPollInterval.
func NewPoller(loader *Loader, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Poller{
		loader:   loader,
		interval: interval,
		logger:   logger,
	}
}

// Start schedules the periodic check. Starting an already running poller is
// a no-op.
func (p *Poller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron != nil {
		return nil
	}

	runner := cron.New()
	if _, err := runner.AddFunc(fmt.Sprintf("@every %s", p.interval), p.tick); err != nil {
		return fmt.Errorf("l10n: schedule reload poll: %w", err)
	}
	runner.Start()
	p.cron = runner

	p.logger.Debug("reload polling started", slog.Duration("interval", p.interval))
	return nil
}

// Stop cancels the schedule and waits for an in-flight tick to complete.
func (p *Poller) Stop() {
	p.mu.Lock()
	runner := p.cron
	p.cron = nil
	p.mu.Unlock()

	if runner == nil {
		return
	}
	<-runner.Stop().Done()
	p.logger.Debug("reload polling stopped")
}

// Running reports whether the poller is scheduled.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cron != nil
}

func (p *Poller) tick() {
	language := p.loader.engine.Language()
	if language == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	if p.loader.Fresh(ctx, language) {
		return
	}

	if err := p.loader.Load(ctx, language); err != nil {
		p.logger.Warn("periodic reload failed",
			slog.String("language", language),
			slog.Any("error", err))
	}
}
