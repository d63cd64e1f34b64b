package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/models"
)

const defaultPollInterval = 30 * time.Second

// Snapshot is the result of one poll. Err is set when the list could not be
// fetched; Contacts is nil then.
type Snapshot struct {
	Contacts []models.Contact
	Err      error
	At       time.Time
}

// ListPoller fetches the contact list on start, on every tick and on
// [ListPoller.Refresh], and publishes the result on [ListPoller.Snapshots].
// Only the latest unread snapshot is kept.
type ListPoller struct {
	parent   context.Context
	lister   ContactLister
	interval time.Duration
	logger   *logger.Logger

	out     chan Snapshot
	refresh chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewListPoller returns an idle poller; ctx bounds every run.
//
// Parameters:
//
//	ctx    - parent context; cancelling it stops a running poller
//	lister - source of contact snapshots
//	cfg    - poll interval; zero or negative selects the default
//	logger - worker logger
func NewListPoller(ctx context.Context, lister ContactLister, cfg config.ClientWorkers, logger *logger.Logger) *ListPoller {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &ListPoller{
		parent:   ctx,
		lister:   lister,
		interval: interval,
		logger:   logger,
		out:      make(chan Snapshot, 1),
		refresh:  make(chan struct{}, 1),
	}
}

// Snapshots returns the channel snapshots are delivered on.
func (p *ListPoller) Snapshots() <-chan Snapshot {
	return p.out
}

// Refresh asks for an immediate poll. Requests made while one is pending
// are merged.
func (p *ListPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run implements [Worker]. A running poller is restarted.
func (p *ListPoller) Run() {
	p.Stop()

	p.mu.Lock()
	ctx, cancel := context.WithCancel(p.parent)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.poll(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.poll(ctx)
			case <-p.refresh:
				p.poll(ctx)
				t.Reset(p.interval)
			}
		}
	}()
}

// Stop implements [Worker]. Safe to call when the poller is not running.
func (p *ListPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *ListPoller) poll(ctx context.Context) {
	contacts, err := p.lister.List(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		p.logger.Err(err).Str("func", "ListPoller.poll").Msg("error polling contact list")
		contacts = nil
	}

	p.publish(Snapshot{Contacts: contacts, Err: err, At: time.Now()})
}

// publish replaces an unread snapshot with s.
func (p *ListPoller) publish(s Snapshot) {
	for {
		select {
		case p.out <- s:
			return
		default:
		}

		select {
		case <-p.out:
		default:
		}
	}
}
