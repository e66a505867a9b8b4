package review

import (
	"testing"
	"time"

	"github.com/SebastianBuritica/interviewprep/internal/store"
)

func TestInitTopic_SetsStageZero(t *testing.T) {
	sched := NewScheduler(nil)

	strongAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.InitTopic("react", strongAt)

	tr := sched.Get("react")
	if tr == nil {
		t.Fatal("expected review state")
	}
	if tr.Stage != 0 {
		t.Errorf("Stage = %d, want 0", tr.Stage)
	}
	expectedDue := strongAt.AddDate(0, 0, 1)
	if !tr.DueAt.Equal(expectedDue) {
		t.Errorf("DueAt = %v, want %v", tr.DueAt, expectedDue)
	}
}

func TestRecordReview_Correct_AdvancesStage(t *testing.T) {
	sched := NewScheduler(nil)
	strongAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.InitTopic("react", strongAt)

	now := strongAt.AddDate(0, 0, 1) // Day 1
	sched.RecordReview("react", true, now)

	tr := sched.Get("react")
	if tr.Stage != 1 {
		t.Errorf("Stage = %d, want 1", tr.Stage)
	}
	expectedDue := now.AddDate(0, 0, 3) // BaseIntervals[1]
	if !tr.DueAt.Equal(expectedDue) {
		t.Errorf("DueAt = %v, want %v", tr.DueAt, expectedDue)
	}
	if !tr.LastHit.Equal(now) {
		t.Errorf("LastHit = %v, want %v", tr.LastHit, now)
	}
}

func TestRecordReview_StageCapsAtMax(t *testing.T) {
	sched := NewScheduler(nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.InitTopic("css", now)

	for i := 0; i < 10; i++ {
		now = now.AddDate(0, 0, 30)
		sched.RecordReview("css", true, now)
	}

	tr := sched.Get("css")
	if tr.Stage != MaxStage {
		t.Errorf("Stage = %d, want capped at %d", tr.Stage, MaxStage)
	}
	expectedDue := now.AddDate(0, 0, BaseIntervals[MaxStage])
	if !tr.DueAt.Equal(expectedDue) {
		t.Errorf("DueAt = %v, want %v", tr.DueAt, expectedDue)
	}
}

func TestRecordReview_Miss_DemotesAndStaysDue(t *testing.T) {
	sched := NewScheduler(nil)
	strongAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.InitTopic("react", strongAt)

	// Climb to stage 2.
	now := strongAt.AddDate(0, 0, 1)
	sched.RecordReview("react", true, now)
	now = now.AddDate(0, 0, 3)
	sched.RecordReview("react", true, now)

	dueBefore := sched.Get("react").DueAt

	// Miss while due.
	now = dueBefore.AddDate(0, 0, 2)
	sched.RecordReview("react", false, now)

	tr := sched.Get("react")
	if tr.Stage != 0 {
		t.Errorf("Stage = %d, want 0 after a miss", tr.Stage)
	}
	if !tr.DueAt.Equal(dueBefore) {
		t.Error("expected a miss to leave the due date unchanged")
	}
	if !tr.IsDue(now) {
		t.Error("expected topic to stay due after a miss")
	}
}

func TestRecordReview_UntrackedTopicIgnored(t *testing.T) {
	sched := NewScheduler(nil)
	sched.RecordReview("ghost", true, time.Now())

	if sched.Get("ghost") != nil {
		t.Error("expected untracked topic to stay untracked")
	}
}

func TestDueTopics_SortedMostOverdueFirst(t *testing.T) {
	sched := NewScheduler(nil)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	sched.InitTopic("react", base)              // due day 1
	sched.InitTopic("css", base.AddDate(0, 0, 3)) // due day 4
	sched.InitTopic("apis", base.AddDate(0, 0, 8)) // due day 9

	now := base.AddDate(0, 0, 5)
	due := sched.DueTopics(now)

	want := []string{"react", "css"}
	if len(due) != len(want) {
		t.Fatalf("DueTopics = %v, want %v", due, want)
	}
	for i := range want {
		if due[i] != want[i] {
			t.Errorf("DueTopics[%d] = %q, want %q", i, due[i], want[i])
		}
	}
}

func TestDueTopics_TieBreaksAlphabetically(t *testing.T) {
	sched := NewScheduler(nil)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	sched.InitTopic("react", base)
	sched.InitTopic("css", base)

	due := sched.DueTopics(base.AddDate(0, 0, 2))
	if len(due) != 2 || due[0] != "css" || due[1] != "react" {
		t.Errorf("DueTopics = %v, want [css react]", due)
	}
}

func TestSync_InitializesAndDrops(t *testing.T) {
	sched := NewScheduler(nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.InitTopic("react", now)
	sched.InitTopic("css", now)

	sched.Sync(map[string]bool{"react": true, "typescript": true}, now)

	if sched.Get("css") != nil {
		t.Error("expected css to drop out after falling from strong")
	}
	if sched.Get("typescript") == nil {
		t.Error("expected typescript to start tracking")
	}
	if tr := sched.Get("react"); tr == nil || !tr.DueAt.Equal(now.AddDate(0, 0, 1)) {
		t.Error("expected react schedule to be preserved")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	sched := NewScheduler(nil)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.InitTopic("react", base)
	sched.RecordReview("react", true, base.AddDate(0, 0, 1))

	snap := &store.SnapshotData{Review: sched.SnapshotData()}
	restored := NewScheduler(snap)

	tr := restored.Get("react")
	if tr == nil {
		t.Fatal("expected react to survive the round trip")
	}
	if tr.Stage != 1 {
		t.Errorf("Stage = %d, want 1", tr.Stage)
	}
	orig := sched.Get("react")
	if !tr.DueAt.Equal(orig.DueAt) {
		t.Errorf("DueAt = %v, want %v", tr.DueAt, orig.DueAt)
	}
	if !tr.LastHit.Equal(orig.LastHit) {
		t.Errorf("LastHit = %v, want %v", tr.LastHit, orig.LastHit)
	}
}

func TestNewScheduler_NilSnapshot(t *testing.T) {
	sched := NewScheduler(nil)
	if got := sched.DueTopics(time.Now()); len(got) != 0 {
		t.Errorf("DueTopics = %v, want empty", got)
	}
	if got := sched.All(); len(got) != 0 {
		t.Errorf("All = %v, want empty", got)
	}
}

func TestReviewStateHelpers(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	tr := &TopicReview{Topic: "react", Stage: 2, DueAt: now.AddDate(0, 0, -2)}

	if !tr.IsDue(now) {
		t.Error("expected due")
	}
	if got := tr.OverdueDays(now); got != 2 {
		t.Errorf("OverdueDays = %f, want 2", got)
	}
	if got := tr.CurrentIntervalDays(); got != 7 {
		t.Errorf("CurrentIntervalDays = %d, want 7", got)
	}
	if got := tr.DaysUntilReview(now); got != 0 {
		t.Errorf("DaysUntilReview = %d, want 0 when due", got)
	}

	future := &TopicReview{Topic: "css", Stage: 0, DueAt: now.Add(60 * time.Hour)}
	if future.IsDue(now) {
		t.Error("expected not due")
	}
	if got := future.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays = %f, want 0 before due", got)
	}
	// 2.5 days out rounds up to 3.
	if got := future.DaysUntilReview(now); got != 3 {
		t.Errorf("DaysUntilReview = %d, want 3", got)
	}
}
