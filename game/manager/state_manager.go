package manager

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord describes one run from its first move to its reset.
type RunRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     CollisionType
}

func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the history of finished runs for the lifetime of the
// process. Nothing is written to disk.
type StateManager struct {
	sessionID    string
	highScore    int
	scoreHistory []RunRecord
	current      *RunRecord
	now          func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		sessionID:    uuid.New().String(),
		scoreHistory: make([]RunRecord, 0),
		now:          time.Now,
	}
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// StartRun opens a record for the run in progress. It is a no-op while one is open.
func (sm *StateManager) StartRun() {
	if sm.current != nil {
		return
	}
	sm.current = &RunRecord{
		ID:        uuid.New().String(),
		StartTime: sm.now(),
	}
}

// Running reports whether a run has been started and not yet ended.
func (sm *StateManager) Running() bool {
	return sm.current != nil
}

// EndRun closes the open run with its final score. It returns false when no
// run was open, which is the case for resets of a snake that never moved.
func (sm *StateManager) EndRun(score int, cause CollisionType) (RunRecord, bool) {
	if sm.current == nil {
		return RunRecord{}, false
	}
	rec := *sm.current
	rec.EndTime = sm.now()
	rec.Score = score
	rec.Cause = cause
	sm.current = nil

	sm.scoreHistory = append(sm.scoreHistory, rec)
	if score > sm.highScore {
		sm.highScore = score
	}
	return rec, true
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetScoreHistory returns a copy of the finished runs, oldest first.
func (sm *StateManager) GetScoreHistory() []RunRecord {
	return append([]RunRecord(nil), sm.scoreHistory...)
}

// GetAverageScore returns the mean score over finished runs.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.scoreHistory {
		total += r.Score
	}
	return float64(total) / float64(len(sm.scoreHistory))
}

// Summary is a one-line report of the session for the log.
func (sm *StateManager) Summary() string {
	return fmt.Sprintf("session %s: runs=%d best=%d avg=%.1f",
		sm.sessionID, len(sm.scoreHistory), sm.highScore, sm.GetAverageScore())
}
