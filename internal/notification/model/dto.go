// Package model provides domain models and DTOs for the notification module.
package model

// ListResponse represents the notification feed for a user. UnreadCount is the
// true unread total, not capped by the feed size.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
}

// MarkReadRequest selects which notifications to mark as read. Exactly one
// mode applies: by ID, by type, or everything unread. ID wins when both are set.
type MarkReadRequest struct {
	ID   string `json:"id" form:"id"`
	Type string `json:"type" form:"type"`
}

// Template describes one notification to be fanned out to a set of recipients.
type Template struct {
	Type    string
	Title   string
	Message string
	Data    Payload
}
