package answers

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/metrics"
	"diagnostic-canvas/internal/storage"
)

// DefaultKey is the storage key the canvas state lives under.
const DefaultKey = "canvas-answers-v1"

// Store owns the answer state of one session and writes it through to
// storage after every mutation.
type Store struct {
	storage storage.Storage
	key     string
	state   State
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewStore creates a store with empty state. Call Load to restore
// persisted answers.
func NewStore(s storage.Storage, key string, logger *zap.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		storage: s,
		key:     key,
		state:   Empty(),
		logger:  logger.With(zap.String("key", key)),
		metrics: m,
	}
}

// Load replaces the state with what is persisted. Missing or malformed
// data leaves an empty state; nothing is reported to the caller.
func (s *Store) Load() {
	s.state = Empty()

	data, err := s.storage.Get(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug("no persisted answers")
		return
	}
	if err != nil {
		s.metrics.IncrementLoadFailures()
		s.logger.Warn("read persisted answers", zap.Error(err))
		return
	}

	state, err := Unmarshal(data)
	if err != nil {
		s.metrics.IncrementLoadFailures()
		s.logger.Warn("discard malformed answers", zap.Error(err))
		return
	}
	s.state = state
	s.logger.Debug("answers loaded",
		zap.Int("answers", len(state.Answers)),
		zap.Int("completed", len(state.Completed)))
}

// Save writes the full state, overwriting whatever was stored before.
func (s *Store) Save() error {
	data, err := Marshal(s.state)
	if err == nil {
		err = s.storage.Set(s.key, data)
	}
	s.metrics.IncrementSave(err == nil)
	if err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	return nil
}

// persist saves and swallows the error after logging it.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.logger.Error("persist answers", zap.Error(err))
	}
}

// SetAnswer replaces the answer of block id.
func (s *Store) SetAnswer(id, text string) error {
	if !catalog.Contains(id) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownBlock, id)
	}
	s.state = SetAnswer(s.state, id, text)
	s.metrics.IncrementAnswerEdits()
	s.persist()
	return nil
}

// ToggleComplete flips the completed flag of block id.
func (s *Store) ToggleComplete(id string) error {
	if !catalog.Contains(id) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownBlock, id)
	}
	s.state = ToggleComplete(s.state, id)
	s.metrics.IncrementToggles()
	s.logger.Debug("toggle complete", zap.String("block_id", id), zap.Bool("completed", s.state.IsCompleted(id)))
	s.persist()
	return nil
}

// ClearAnswer empties the answer of block id. The completed flag is kept.
func (s *Store) ClearAnswer(id string) error {
	if !catalog.Contains(id) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownBlock, id)
	}
	s.state = ClearAnswer(s.state, id)
	s.metrics.IncrementClears()
	s.persist()
	return nil
}

// Reset drops every answer and completed flag.
func (s *Store) Reset() {
	s.state = Empty()
	s.logger.Info("answers reset")
	s.persist()
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return s.state.Clone()
}

// Answers returns a copy of the answer map.
func (s *Store) Answers() map[string]string {
	return s.state.Clone().Answers
}

func (s *Store) Answer(id string) string {
	return s.state.Answer(id)
}

func (s *Store) IsCompleted(id string) bool {
	return s.state.IsCompleted(id)
}

func (s *Store) VisuallyComplete(id string) bool {
	return s.state.VisuallyComplete(id)
}

// Metrics returns the session counters the store reports into.
func (s *Store) Metrics() *metrics.Metrics {
	return s.metrics
}
