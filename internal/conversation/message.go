package conversation

import "time"

// Status is a message's delivery state.
type Status string

const (
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusError     Status = "error"
)

// Message is one chat bubble.
type Message struct {
	ID        string
	Text      string
	IsUser    bool
	Timestamp time.Time
	Status    Status
}
