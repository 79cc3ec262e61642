package model

// StatsSnapshot holds backend-computed aggregate counters. It is a pure
// display mirror: the client never derives it from the task list, so it may
// momentarily diverge from what the list would imply.
type StatsSnapshot struct {
	Total     int     `json:"total"`
	Active    int     `json:"active"`
	Completed int     `json:"completed"`
	Paused    int     `json:"paused"`
	TotalSize int64   `json:"total_size"`
	AvgSpeed  float64 `json:"avg_speed"`
}
