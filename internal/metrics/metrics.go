package metrics

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Metrics struct {
	mu             sync.RWMutex
	SessionID      string
	StartedAt      time.Time
	AnswerEdits    int64
	Toggles        int64
	Clears         int64
	Exports        int64
	Saves          int64
	SaveFailures   int64
	LoadFailures   int64
	LastUpdateTime time.Time
}

func NewMetrics() *Metrics {
	now := time.Now()
	return &Metrics{
		SessionID:      uuid.New().String(),
		StartedAt:      now,
		LastUpdateTime: now,
	}
}

func (m *Metrics) IncrementAnswerEdits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswerEdits++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementToggles() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Toggles++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementClears() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementExports() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Exports++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSave(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if !success {
		m.SaveFailures++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementLoadFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadFailures++
	m.LastUpdateTime = time.Now()
}

// Snapshot is a lock-free copy of the counters.
type Snapshot struct {
	SessionID    string
	Duration     time.Duration
	AnswerEdits  int64
	Toggles      int64
	Clears       int64
	Exports      int64
	Saves        int64
	SaveFailures int64
	LoadFailures int64
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		SessionID:    m.SessionID,
		Duration:     m.LastUpdateTime.Sub(m.StartedAt),
		AnswerEdits:  m.AnswerEdits,
		Toggles:      m.Toggles,
		Clears:       m.Clears,
		Exports:      m.Exports,
		Saves:        m.Saves,
		SaveFailures: m.SaveFailures,
		LoadFailures: m.LoadFailures,
	}
}
