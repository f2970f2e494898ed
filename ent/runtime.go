// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/techniq-app/techniq/ent/coinevent"
	"github.com/techniq-app/techniq/ent/drillevent"
	"github.com/techniq-app/techniq/ent/feedpost"
	"github.com/techniq-app/techniq/ent/llmrequestevent"
	"github.com/techniq-app/techniq/ent/playerstate"
	"github.com/techniq-app/techniq/ent/schema"
	"github.com/techniq-app/techniq/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	coineventMixin := schema.CoinEvent{}.Mixin()
	coineventMixinFields0 := coineventMixin[0].Fields()
	_ = coineventMixinFields0
	coineventFields := schema.CoinEvent{}.Fields()
	_ = coineventFields
	// coineventDescTimestamp is the schema descriptor for timestamp field.
	coineventDescTimestamp := coineventMixinFields0[1].Descriptor()
	// coinevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coinevent.DefaultTimestamp = coineventDescTimestamp.Default.(func() time.Time)
	// coineventDescAmount is the schema descriptor for amount field.
	coineventDescAmount := coineventFields[0].Descriptor()
	// coinevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	coinevent.AmountValidator = coineventDescAmount.Validators[0].(func(int64) error)
	// coineventDescDirection is the schema descriptor for direction field.
	coineventDescDirection := coineventFields[1].Descriptor()
	// coinevent.DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	coinevent.DirectionValidator = coineventDescDirection.Validators[0].(func(string) error)
	// coineventDescReason is the schema descriptor for reason field.
	coineventDescReason := coineventFields[2].Descriptor()
	// coinevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	coinevent.ReasonValidator = coineventDescReason.Validators[0].(func(string) error)
	// coineventDescBalanceAfter is the schema descriptor for balance_after field.
	coineventDescBalanceAfter := coineventFields[3].Descriptor()
	// coinevent.BalanceAfterValidator is a validator for the "balance_after" field. It is called by the builders before save.
	coinevent.BalanceAfterValidator = coineventDescBalanceAfter.Validators[0].(func(int64) error)
	drilleventMixin := schema.DrillEvent{}.Mixin()
	drilleventMixinFields0 := drilleventMixin[0].Fields()
	_ = drilleventMixinFields0
	drilleventFields := schema.DrillEvent{}.Fields()
	_ = drilleventFields
	// drilleventDescTimestamp is the schema descriptor for timestamp field.
	drilleventDescTimestamp := drilleventMixinFields0[1].Descriptor()
	// drillevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillevent.DefaultTimestamp = drilleventDescTimestamp.Default.(func() time.Time)
	// drilleventDescName is the schema descriptor for name field.
	drilleventDescName := drilleventFields[0].Descriptor()
	// drillevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	drillevent.NameValidator = drilleventDescName.Validators[0].(func(string) error)
	// drilleventDescSkillType is the schema descriptor for skill_type field.
	drilleventDescSkillType := drilleventFields[1].Descriptor()
	// drillevent.SkillTypeValidator is a validator for the "skill_type" field. It is called by the builders before save.
	drillevent.SkillTypeValidator = drilleventDescSkillType.Validators[0].(func(string) error)
	// drilleventDescPosition is the schema descriptor for position field.
	drilleventDescPosition := drilleventFields[2].Descriptor()
	// drillevent.DefaultPosition holds the default value on creation for the position field.
	drillevent.DefaultPosition = drilleventDescPosition.Default.(string)
	// drilleventDescDifficulty is the schema descriptor for difficulty field.
	drilleventDescDifficulty := drilleventFields[3].Descriptor()
	// drillevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	drillevent.DefaultDifficulty = drilleventDescDifficulty.Default.(int)
	// drilleventDescDurationMins is the schema descriptor for duration_mins field.
	drilleventDescDurationMins := drilleventFields[4].Descriptor()
	// drillevent.DefaultDurationMins holds the default value on creation for the duration_mins field.
	drillevent.DefaultDurationMins = drilleventDescDurationMins.Default.(int)
	// drilleventDescSource is the schema descriptor for source field.
	drilleventDescSource := drilleventFields[5].Descriptor()
	// drillevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	drillevent.SourceValidator = drilleventDescSource.Validators[0].(func(string) error)
	feedpostFields := schema.FeedPost{}.Fields()
	_ = feedpostFields
	// feedpostDescPostID is the schema descriptor for post_id field.
	feedpostDescPostID := feedpostFields[0].Descriptor()
	// feedpost.PostIDValidator is a validator for the "post_id" field. It is called by the builders before save.
	feedpost.PostIDValidator = feedpostDescPostID.Validators[0].(func(string) error)
	// feedpostDescAuthor is the schema descriptor for author field.
	feedpostDescAuthor := feedpostFields[1].Descriptor()
	// feedpost.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	feedpost.AuthorValidator = feedpostDescAuthor.Validators[0].(func(string) error)
	// feedpostDescKind is the schema descriptor for kind field.
	feedpostDescKind := feedpostFields[2].Descriptor()
	// feedpost.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	feedpost.KindValidator = feedpostDescKind.Validators[0].(func(string) error)
	// feedpostDescBody is the schema descriptor for body field.
	feedpostDescBody := feedpostFields[3].Descriptor()
	// feedpost.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	feedpost.BodyValidator = feedpostDescBody.Validators[0].(func(string) error)
	// feedpostDescLikes is the schema descriptor for likes field.
	feedpostDescLikes := feedpostFields[4].Descriptor()
	// feedpost.DefaultLikes holds the default value on creation for the likes field.
	feedpost.DefaultLikes = feedpostDescLikes.Default.(int)
	// feedpost.LikesValidator is a validator for the "likes" field. It is called by the builders before save.
	feedpost.LikesValidator = feedpostDescLikes.Validators[0].(func(int) error)
	// feedpostDescCreatedAt is the schema descriptor for created_at field.
	feedpostDescCreatedAt := feedpostFields[5].Descriptor()
	// feedpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedpost.DefaultCreatedAt = feedpostDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	playerstateFields := schema.PlayerState{}.Fields()
	_ = playerstateFields
	// playerstateDescTotalExperience is the schema descriptor for total_experience field.
	playerstateDescTotalExperience := playerstateFields[0].Descriptor()
	// playerstate.DefaultTotalExperience holds the default value on creation for the total_experience field.
	playerstate.DefaultTotalExperience = playerstateDescTotalExperience.Default.(int64)
	// playerstate.TotalExperienceValidator is a validator for the "total_experience" field. It is called by the builders before save.
	playerstate.TotalExperienceValidator = playerstateDescTotalExperience.Validators[0].(func(int64) error)
	// playerstateDescLevel is the schema descriptor for level field.
	playerstateDescLevel := playerstateFields[1].Descriptor()
	// playerstate.DefaultLevel holds the default value on creation for the level field.
	playerstate.DefaultLevel = playerstateDescLevel.Default.(int)
	// playerstateDescCurrentStreakDays is the schema descriptor for current_streak_days field.
	playerstateDescCurrentStreakDays := playerstateFields[2].Descriptor()
	// playerstate.DefaultCurrentStreakDays holds the default value on creation for the current_streak_days field.
	playerstate.DefaultCurrentStreakDays = playerstateDescCurrentStreakDays.Default.(int)
	// playerstate.CurrentStreakDaysValidator is a validator for the "current_streak_days" field. It is called by the builders before save.
	playerstate.CurrentStreakDaysValidator = playerstateDescCurrentStreakDays.Validators[0].(func(int) error)
	// playerstateDescLongestStreakDays is the schema descriptor for longest_streak_days field.
	playerstateDescLongestStreakDays := playerstateFields[3].Descriptor()
	// playerstate.DefaultLongestStreakDays holds the default value on creation for the longest_streak_days field.
	playerstate.DefaultLongestStreakDays = playerstateDescLongestStreakDays.Default.(int)
	// playerstate.LongestStreakDaysValidator is a validator for the "longest_streak_days" field. It is called by the builders before save.
	playerstate.LongestStreakDaysValidator = playerstateDescLongestStreakDays.Validators[0].(func(int) error)
	// playerstateDescStreakFreezes is the schema descriptor for streak_freezes field.
	playerstateDescStreakFreezes := playerstateFields[4].Descriptor()
	// playerstate.DefaultStreakFreezes holds the default value on creation for the streak_freezes field.
	playerstate.DefaultStreakFreezes = playerstateDescStreakFreezes.Default.(int)
	// playerstate.StreakFreezesValidator is a validator for the "streak_freezes" field. It is called by the builders before save.
	playerstate.StreakFreezesValidator = playerstateDescStreakFreezes.Validators[0].(func(int) error)
	// playerstateDescLastSessionID is the schema descriptor for last_session_id field.
	playerstateDescLastSessionID := playerstateFields[6].Descriptor()
	// playerstate.DefaultLastSessionID holds the default value on creation for the last_session_id field.
	playerstate.DefaultLastSessionID = playerstateDescLastSessionID.Default.(string)
	// playerstateDescCoinBalance is the schema descriptor for coin_balance field.
	playerstateDescCoinBalance := playerstateFields[7].Descriptor()
	// playerstate.DefaultCoinBalance holds the default value on creation for the coin_balance field.
	playerstate.DefaultCoinBalance = playerstateDescCoinBalance.Default.(int64)
	// playerstate.CoinBalanceValidator is a validator for the "coin_balance" field. It is called by the builders before save.
	playerstate.CoinBalanceValidator = playerstateDescCoinBalance.Validators[0].(func(int64) error)
	// playerstateDescTotalCoinsEarned is the schema descriptor for total_coins_earned field.
	playerstateDescTotalCoinsEarned := playerstateFields[8].Descriptor()
	// playerstate.DefaultTotalCoinsEarned holds the default value on creation for the total_coins_earned field.
	playerstate.DefaultTotalCoinsEarned = playerstateDescTotalCoinsEarned.Default.(int64)
	// playerstate.TotalCoinsEarnedValidator is a validator for the "total_coins_earned" field. It is called by the builders before save.
	playerstate.TotalCoinsEarnedValidator = playerstateDescTotalCoinsEarned.Validators[0].(func(int64) error)
	// playerstateDescPosition is the schema descriptor for position field.
	playerstateDescPosition := playerstateFields[11].Descriptor()
	// playerstate.DefaultPosition holds the default value on creation for the position field.
	playerstate.DefaultPosition = playerstateDescPosition.Default.(string)
	// playerstateDescExperienceLevel is the schema descriptor for experience_level field.
	playerstateDescExperienceLevel := playerstateFields[12].Descriptor()
	// playerstate.DefaultExperienceLevel holds the default value on creation for the experience_level field.
	playerstate.DefaultExperienceLevel = playerstateDescExperienceLevel.Default.(string)
	// playerstateDescUpdatedAt is the schema descriptor for updated_at field.
	playerstateDescUpdatedAt := playerstateFields[14].Descriptor()
	// playerstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playerstate.DefaultUpdatedAt = playerstateDescUpdatedAt.Default.(func() time.Time)
	// playerstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	playerstate.UpdateDefaultUpdatedAt = playerstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescIntensity is the schema descriptor for intensity field.
	sessioneventDescIntensity := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultIntensity holds the default value on creation for the intensity field.
	sessionevent.DefaultIntensity = sessioneventDescIntensity.Default.(int)
	// sessioneventDescExerciseCount is the schema descriptor for exercise_count field.
	sessioneventDescExerciseCount := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultExerciseCount holds the default value on creation for the exercise_count field.
	sessionevent.DefaultExerciseCount = sessioneventDescExerciseCount.Default.(int)
	// sessioneventDescAllCompleted is the schema descriptor for all_completed field.
	sessioneventDescAllCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultAllCompleted holds the default value on creation for the all_completed field.
	sessionevent.DefaultAllCompleted = sessioneventDescAllCompleted.Default.(bool)
	// sessioneventDescRating is the schema descriptor for rating field.
	sessioneventDescRating := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultRating holds the default value on creation for the rating field.
	sessionevent.DefaultRating = sessioneventDescRating.Default.(int)
	// sessioneventDescNotes is the schema descriptor for notes field.
	sessioneventDescNotes := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultNotes holds the default value on creation for the notes field.
	sessionevent.DefaultNotes = sessioneventDescNotes.Default.(string)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescExperienceAwarded is the schema descriptor for experience_awarded field.
	sessioneventDescExperienceAwarded := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultExperienceAwarded holds the default value on creation for the experience_awarded field.
	sessionevent.DefaultExperienceAwarded = sessioneventDescExperienceAwarded.Default.(int64)
}
