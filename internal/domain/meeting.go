package domain

import "github.com/google/uuid"

// RawMeeting is one course meeting exactly as extracted from a catalog page.
// Nothing is guaranteed about its fields: sentinel values ("n.a.",
// "pending"), empty strings, and malformed time ranges all occur in the wild.
type RawMeeting struct {
	Time     string `json:"time"`
	Days     string `json:"days"`
	Location string `json:"location"`
}

// Rejection is the audit record kept for every meeting the content filter
// discards. Rejections are exposed alongside room usage output and never
// feed into it.
type Rejection struct {
	ID     uuid.UUID `json:"id"`
	Course string    `json:"course"`
	Reason string    `json:"reason"`
}
