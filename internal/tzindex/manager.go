package tzindex

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Manager keeps the index fresh on a schedule. Host tzdata packages update
// underneath a long-running process, and new IANA releases add or rename
// zones, so the candidate set cannot be loaded once at boot and forgotten.
type Manager struct {
	index    *Index
	cron     *cron.Cron
	schedule string
}

// NewManager creates a manager that rescans the index on the given cron
// schedule (e.g. "0 4 * * *" for daily at 04:00).
func NewManager(index *Index, schedule string) *Manager {
	return &Manager{
		index:    index,
		cron:     cron.New(),
		schedule: schedule,
	}
}

// Start performs an initial load and registers the rescan job.
func (m *Manager) Start() error {
	if err := m.index.Reload(); err != nil {
		return fmt.Errorf("initial zone index load: %w", err)
	}
	log.Printf("Zone index loaded: %d zones", m.index.Count())

	_, err := m.cron.AddFunc(m.schedule, func() {
		if err := m.index.Reload(); err != nil {
			log.Printf("Zone index reload failed: %v", err)
			return
		}
		log.Printf("Zone index reloaded: %d zones", m.index.Count())
	})
	if err != nil {
		return fmt.Errorf("invalid zone reload schedule %q: %w", m.schedule, err)
	}

	m.cron.Start()
	return nil
}

// Stop cancels the scheduled rescans.
func (m *Manager) Stop() {
	m.cron.Stop()
}
