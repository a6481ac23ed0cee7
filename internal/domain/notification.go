package domain

// Notification is the single transient message slot.
// swagger:model Notification
type Notification struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}
