package entity

import "time"

type BlockedNumber struct {
	Phone     string    `json:"phone"`
	Reason    string    `json:"reason"`
	BlockedAt time.Time `json:"blocked_at"`
}

// ExtortionCheck is the outcome of screening one inbound message.
// Severity counts the matched keywords; two or more flags the message.
type ExtortionCheck struct {
	Flagged  bool     `json:"flagged"`
	Keywords []string `json:"keywords"`
	Severity int      `json:"severity"`
}

type SecurityReport struct {
	BlockedCount   int             `json:"blocked_count"`
	BlockedNumbers []BlockedNumber `json:"blocked_numbers"`
}
