package model

// Notification 是由平台事件生成的用户通知。
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt LocalTime `json:"createdAt"`
}
