package dto

import "time"

type NotificationResponseDTO struct {
	ID             int       `json:"id"`
	Type           string    `json:"type"`
	EntityID       int       `json:"entity_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Action         string    `json:"action,omitempty"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

type UnreadCountResponseDTO struct {
	Unread int `json:"unread"`
}
