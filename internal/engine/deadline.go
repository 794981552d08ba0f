package engine

import "time"

// Deadline 墙钟截止时间。只在节点入口轮询，单个节点本身不会被打断。
type Deadline struct {
	at  time.Time
	now func() time.Time
}

// NewDeadline budget <= 0 时从 start 起立即过期
func NewDeadline(start time.Time, budget time.Duration) Deadline {
	if budget < 0 {
		budget = 0
	}
	return Deadline{at: start.Add(budget), now: time.Now}
}

func (d *Deadline) Passed() bool {
	return !d.now().Before(d.at)
}
