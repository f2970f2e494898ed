package screen

// RefreshStatsMsg asks the app shell to reload the header stats after a
// screen changed the player record.
type RefreshStatsMsg struct{}
