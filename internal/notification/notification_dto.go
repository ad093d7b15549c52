package notification

type GetNotificationsFilterRequest struct {
	UnreadOnly bool `form:"unread_only"`
}

type NotificationResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Body        string  `json:"body,omitempty"`
	ReferenceID *string `json:"reference_id,omitempty"`
	ReadAt      *string `json:"read_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
