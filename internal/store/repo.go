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
}

// Player is the in-memory form of the persistent player record.
// The progression ledger and coin economy are the only writers of its
// numeric fields; Save commits every field in one transaction.
type Player struct {
	ID                int
	TotalExperience   int64
	Level             int
	CurrentStreakDays int
	LongestStreakDays int
	StreakFreezes     int
	LastActivityDate  *time.Time
	LastSessionID     string
	CoinBalance       int64
	TotalCoinsEarned  int64
	OwnedItems        []string
	Achievements      []string
	Position          string
	ExperienceLevel   string
	TrainingGoals     []string
}

// PlayerRepo loads and saves the single player record.
type PlayerRepo interface {
	// Load returns the player record, creating the default row
	// (level 1, zero experience and coins) on first use.
	Load(ctx context.Context) (*Player, error)

	// Save durably commits all fields of the record. Either every pending
	// field change lands or none do.
	Save(ctx context.Context, p *Player) error
}

// SessionEventData captures one training session for persistence.
type SessionEventData struct {
	SessionID         string
	ActivityDate      time.Time
	Intensity         int
	ExerciseCount     int
	AllCompleted      bool
	Rating            int
	Notes             string
	DurationSecs      int
	ExperienceAwarded int64
	Exercises         []ExerciseResult
}

// ExerciseResult is the per-exercise outcome stored with a session event.
type ExerciseResult struct {
	Name      string
	SkillType string
	Completed bool
	Technique float64
}

// SessionRecord is a persisted session event.
type SessionRecord struct {
	SessionID         string
	ActivityDate      time.Time
	Intensity         int
	ExerciseCount     int
	AllCompleted      bool
	Rating            int
	Notes             string
	DurationSecs      int
	ExperienceAwarded int64
	Exercises         []ExerciseResult
	Sequence          int64
	Timestamp         time.Time
}

// CoinEventData captures one coin transaction for persistence.
type CoinEventData struct {
	Amount       int64
	Direction    string // "earned" or "spent"
	Reason       string
	BalanceAfter int64
}

// CoinEventRecord is a persisted coin transaction.
type CoinEventRecord struct {
	Amount       int64
	Direction    string
	Reason       string
	BalanceAfter int64
	Sequence     int64
	Timestamp    time.Time
}

// DrillEventData captures one generated drill for persistence.
type DrillEventData struct {
	Name         string
	SkillType    string
	Position     string
	Difficulty   int
	DurationMins int
	Source       string // "llm" or "fallback"
}

// DrillEventRecord is a persisted generated drill.
type DrillEventRecord struct {
	Name         string
	SkillType    string
	Position     string
	Difficulty   int
	DurationMins int
	Source       string
	Sequence     int64
	Timestamp    time.Time
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

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID           int
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
	Sequence     int64
	Timestamp    time.Time
}

// LLMPurposeUsage aggregates LLM token usage for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a completed training session.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// HasSession reports whether a session with this ID was already recorded.
	HasSession(ctx context.Context, sessionID string) (bool, error)

	// QuerySessions returns session events, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// ActivityDays returns the distinct calendar days with at least one
	// session, newest first. Input to the streak audit.
	ActivityDays(ctx context.Context) ([]time.Time, error)

	// AppendCoinEvent records a coin transaction.
	AppendCoinEvent(ctx context.Context, data CoinEventData) error

	// QueryCoinEvents returns coin transactions, newest first.
	QueryCoinEvents(ctx context.Context, opts QueryOpts) ([]CoinEventRecord, error)

	// AppendDrillEvent records a generated drill.
	AppendDrillEvent(ctx context.Context, data DrillEventData) error

	// QueryDrills returns generated drills, newest first.
	QueryDrills(ctx context.Context, opts QueryOpts) ([]DrillEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token counts per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token counts per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// FeedPostData captures a new feed post.
type FeedPostData struct {
	PostID string
	Author string
	Kind   string // "session", "level_up", "achievement"
	Body   string
}

// FeedPostRecord is a persisted feed post.
type FeedPostRecord struct {
	PostID    string
	Author    string
	Kind      string
	Body      string
	Likes     int
	CreatedAt time.Time
}

// FeedRepo manages the local activity feed.
type FeedRepo interface {
	// Add appends a post to the feed.
	Add(ctx context.Context, data FeedPostData) error

	// Recent returns the newest posts, most recent first.
	Recent(ctx context.Context, limit int) ([]FeedPostRecord, error)

	// Like increments a post's like count and returns the new count.
	Like(ctx context.Context, postID string) (int, error)
}
