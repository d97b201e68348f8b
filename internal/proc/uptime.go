package proc

import "time"

// Uptime is the system (or container) uptime and load averages.
type Uptime struct {
	Up     time.Duration
	Load1  float64
	Load5  float64
	Load15 float64
	AsOf   time.Time
}
