package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Topic  string    // restrict to one topic key (answer queries)
}

// Session event actions.
const (
	SessionStart   = "start"
	SessionEnd     = "end"
	SessionAbandon = "abandon"
)

// Study event actions.
const (
	StudyOpened    = "opened"
	StudyCompleted = "completed"
)

// Challenge event actions.
const (
	ChallengeOpened    = "opened"
	ChallengeCompleted = "completed"
	ChallengeReopened  = "reopened"
)

// SessionEventData records a quiz session boundary.
type SessionEventData struct {
	SessionID       string
	Action          string // start | end | abandon
	Topics          []string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// AnswerEventData records one answered question.
type AnswerEventData struct {
	SessionID      string
	Topic          string
	QuestionText   string
	QuestionSource string // bank | llm
	Format         string // multiple_choice | short_text
	CorrectAnswer  string
	LearnerAnswer  string
	Correct        bool
	Score          int // 0-100; exact-match answers score 0 or 100
	TimeMs         int64
}

// StudyEventData records guide reading activity.
type StudyEventData struct {
	GuideSlug    string
	Topic        string
	Action       string // opened | completed
	SecondsSpent int
}

// ChallengeEventData records practice challenge activity.
type ChallengeEventData struct {
	ChallengeID int
	Action      string // opened | completed | reopened
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummary is a start event merged with its matching end event.
type SessionSummary struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time // zero when the session never ended
	Topics          []string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	Completed       bool
}

// AnswerRecord is a stored answer event.
type AnswerRecord struct {
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	Topic          string
	QuestionText   string
	QuestionSource string
	Format         string
	CorrectAnswer  string
	LearnerAnswer  string
	Correct        bool
	Score          int
	TimeMs         int64
}

// TopicTally aggregates answer events for one topic.
type TopicTally struct {
	Attempts     int
	Correct      int
	LastAnswered time.Time
}

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates LLM request events per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM request events per model, for cost
// estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SnapshotData captures derived learner state at a point in time, so
// startup does not replay the full event log.
type SnapshotData struct {
	Version  int                    `json:"version"`
	Topics   map[string]TopicState  `json:"topics,omitempty"`
	Review   map[string]ReviewState `json:"review,omitempty"`
	Counters map[string]int         `json:"counters,omitempty"`
}

// TopicState is the snapshot form of per-topic progress.
type TopicState struct {
	Attempts     int       `json:"attempts"`
	Correct      int       `json:"correct"`
	Strength     string    `json:"strength"`
	LastAnswered time.Time `json:"last_answered,omitempty"`
}

// ReviewState is the snapshot form of a topic's review schedule.
type ReviewState struct {
	Stage   int       `json:"stage"`
	DueAt   time.Time `json:"due_at"`
	LastHit time.Time `json:"last_hit,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a quiz session boundary.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendStudyEvent records guide reading activity.
	AppendStudyEvent(ctx context.Context, data StudyEventData) error

	// AppendChallengeEvent records challenge activity.
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListSessions returns session summaries, newest first.
	ListSessions(ctx context.Context, opts QueryOpts) ([]SessionSummary, error)

	// ListAnswers returns answer records, newest first.
	ListAnswers(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error)

	// TallyAnswers aggregates answer events per topic.
	TallyAnswers(ctx context.Context) (map[string]TopicTally, error)

	// AnswerTimesSince returns the timestamps of answers at or after
	// from, ascending. Streak computation groups them into days.
	AnswerTimesSince(ctx context.Context, from time.Time) ([]time.Time, error)

	// LatestAnswerTime returns the newest answer timestamp for a
	// topic, or the zero time when none exist.
	LatestAnswerTime(ctx context.Context, topic string) (time.Time, error)

	// CompletedChallenges returns the ids whose latest completion
	// action is "completed".
	CompletedChallenges(ctx context.Context) (map[int]bool, error)

	// StudyCounts returns opened-event counts per guide slug.
	StudyCounts(ctx context.Context) (map[string]int, error)

	// RecentLLMRequests returns LLM request events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// GetLLMRequest returns one LLM request event by row id.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
