package domain

import "time"

// ActivityAction identifies a recorded account event.
type ActivityAction string

const (
	ActionRegister     ActivityAction = "register"
	ActionLoginSuccess ActivityAction = "login_success"
	ActionLoginFailure ActivityAction = "login_failure"
	ActionDeactivate   ActivityAction = "deactivate"
)

// ActivityEvent is one entry in an account's activity trail.
type ActivityEvent struct {
	Subject string         `json:"subject"`
	Action  ActivityAction `json:"action"`
	At      time.Time      `json:"at"`
}
