package manager

import (
	"strings"
	"testing"
	"time"
)

func newTestStateManager() (*StateManager, *time.Time) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sm := NewStateManager()
	sm.now = func() time.Time { return clock }
	return sm, &clock
}

func TestStateManager_EndRunWithoutStart(t *testing.T) {
	sm, _ := newTestStateManager()
	if _, ok := sm.EndRun(4, WallCollision); ok {
		t.Error("EndRun without StartRun should report false")
	}
	if len(sm.GetScoreHistory()) != 0 {
		t.Errorf("history len %d, want 0", len(sm.GetScoreHistory()))
	}
}

func TestStateManager_RecordsRuns(t *testing.T) {
	sm, clock := newTestStateManager()

	sm.StartRun()
	if !sm.Running() {
		t.Fatal("Running should be true after StartRun")
	}
	*clock = clock.Add(3 * time.Second)
	rec, ok := sm.EndRun(5, SelfCollision)
	if !ok {
		t.Fatal("EndRun should report true")
	}
	if rec.ID == "" {
		t.Error("run ID is empty")
	}
	if rec.Score != 5 || rec.Cause != SelfCollision {
		t.Errorf("record %+v", rec)
	}
	if rec.Duration() != 3*time.Second {
		t.Errorf("Duration %v, want 3s", rec.Duration())
	}
	if sm.Running() {
		t.Error("Running should be false after EndRun")
	}

	sm.StartRun()
	sm.EndRun(1, WallCollision)

	if sm.GetHighScore() != 5 {
		t.Errorf("high score %d, want 5", sm.GetHighScore())
	}
	if got := sm.GetAverageScore(); got != 3 {
		t.Errorf("average %v, want 3", got)
	}
	if len(sm.GetScoreHistory()) != 2 {
		t.Errorf("history len %d, want 2", len(sm.GetScoreHistory()))
	}
}

func TestStateManager_StartRunIsIdempotent(t *testing.T) {
	sm, clock := newTestStateManager()
	sm.StartRun()
	start := *clock
	*clock = clock.Add(time.Minute)
	sm.StartRun()
	rec, _ := sm.EndRun(0, WallCollision)
	if !rec.StartTime.Equal(start) {
		t.Errorf("StartTime %v, want %v", rec.StartTime, start)
	}
}

func TestStateManager_Summary(t *testing.T) {
	sm, _ := newTestStateManager()
	sm.StartRun()
	sm.EndRun(2, WallCollision)
	s := sm.Summary()
	if !strings.Contains(s, sm.SessionID()) || !strings.Contains(s, "runs=1") || !strings.Contains(s, "best=2") {
		t.Errorf("Summary %q", s)
	}
}

func TestStateManager_HistoryIsACopy(t *testing.T) {
	sm, _ := newTestStateManager()
	sm.StartRun()
	sm.EndRun(3, WallCollision)

	history := sm.GetScoreHistory()
	history[0].Score = 99
	_ = append(history, RunRecord{Score: 7})

	got := sm.GetScoreHistory()
	if len(got) != 1 || got[0].Score != 3 {
		t.Errorf("history changed through returned slice: %+v", got)
	}
}
