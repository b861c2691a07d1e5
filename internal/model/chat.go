package model

import "time"

// Sender 标识一条会话消息的发送方。
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage 代表助手会话中的单条消息。
// 会话转录只追加，唯一的例外是"重置到欢迎消息"操作。
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
