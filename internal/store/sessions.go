package store

import (
	"time"

	"github.com/studyflowhq/studyflow/internal/config"
	"github.com/studyflowhq/studyflow/internal/date"
	"github.com/studyflowhq/studyflow/internal/session"
)

// Sessions owns the focus session history.
type Sessions struct {
	adapter  *Adapter
	cfg      *config.Config
	sessions []*session.Session
	onChange []func()
	now      func() time.Time
}

// NewSessions loads the session history from the adapter. A missing or
// corrupt sessions file yields an empty store.
func NewSessions(adapter *Adapter, cfg *config.Config) *Sessions {
	s := &Sessions{adapter: adapter, cfg: cfg, now: time.Now}
	var sessions []*session.Session
	if adapter.Load(KeySessions, &sessions) {
		s.sessions = sessions
	}
	return s
}

// SetNow overrides the clock (for testing).
func (s *Sessions) SetNow(fn func() time.Time) {
	s.now = fn
}

// Subscribe registers a callback fired after every successful mutation.
func (s *Sessions) Subscribe(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// All returns every recorded session in insertion (chronological) order.
func (s *Sessions) All() []*session.Session {
	return s.sessions
}

// RecordCompletion appends a completed focus session, persists, and
// notifies. linkedTask may be nil when no task was in flight.
func (s *Sessions) RecordCompletion(minutes int, linkedTask *int) (*session.Session, error) {
	sess := &session.Session{
		ID:          s.cfg.NextSessionID,
		Minutes:     minutes,
		CompletedAt: s.now(),
		LinkedTask:  linkedTask,
	}

	s.sessions = append(s.sessions, sess)
	if err := s.persist(); err != nil {
		s.sessions = s.sessions[:len(s.sessions)-1]
		return nil, err
	}

	s.cfg.NextSessionID++
	if err := s.cfg.Save(); err != nil {
		return nil, err
	}

	s.notify()
	return sess, nil
}

// TodaysSessions returns the sessions completed on the current
// calendar date in local time. The comparison is date equality, not a
// rolling 24-hour window.
func (s *Sessions) TodaysSessions() []*session.Session {
	today := date.FromTime(s.now())
	var result []*session.Session
	for _, sess := range s.sessions {
		if today.SameDay(sess.CompletedAt) {
			result = append(result, sess)
		}
	}
	return result
}

// RecentSessions returns the most recent n of today's sessions,
// oldest first.
func (s *Sessions) RecentSessions(n int) []*session.Session {
	today := s.TodaysSessions()
	if n <= 0 || len(today) <= n {
		return today
	}
	return today[len(today)-n:]
}

// ClearAll removes every session.
func (s *Sessions) ClearAll() error {
	s.sessions = nil
	if err := s.persist(); err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Sessions) persist() error {
	sessions := s.sessions
	if sessions == nil {
		sessions = []*session.Session{}
	}
	return s.adapter.Save(KeySessions, sessions)
}

func (s *Sessions) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}
