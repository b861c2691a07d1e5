package service

import (
	"context"
	"internhub-go/internal/model"
	"internhub-go/internal/seed"
	"internhub-go/pkg/log"
	"internhub-go/pkg/token"
	"strings"
	"sync"
	"time"
)

// ReplyFunc 为一条用户输入计算助手应答。
type ReplyFunc func(audience seed.Audience, input string) string

// AssistantState 表示助手状态机的当前状态。
type AssistantState string

const (
	StateIdle             AssistantState = "idle"
	StateAwaitingResponse AssistantState = "awaiting_response"
)

// AssistantService 接口定义了会话助手状态持有者的所有操作。
//
// 转录只在内存中保存（重启即丢失），第一条永远是欢迎消息。
// 状态机只有 Idle / AwaitingResponse 两个状态；应答生成失败
// 会被就地转换为固定致歉消息，状态机永远不会停在 AwaitingResponse。
type AssistantService interface {
	SendMessage(ctx context.Context, text string) (*model.ChatMessage, error)
	Messages() []model.ChatMessage
	Reset()
	ToggleVisible() bool
	State() AssistantState
	EnsureAudience(audience seed.Audience, name string)
}

type assistantService struct {
	mu       sync.Mutex
	messages []model.ChatMessage
	state    AssistantState
	visible  bool

	audience seed.Audience
	userName string
	reply    ReplyFunc
	delay    time.Duration
}

// NewAssistantService 创建助手状态持有者，转录以面向当前用户的欢迎消息开场。
func NewAssistantService(audience seed.Audience, userName string, delay time.Duration, reply ReplyFunc) AssistantService {
	s := &assistantService{
		state:    StateIdle,
		audience: audience,
		userName: userName,
		reply:    reply,
		delay:    delay,
	}
	s.messages = []model.ChatMessage{s.welcome()}
	return s
}

func (s *assistantService) welcome() model.ChatMessage {
	return model.ChatMessage{
		ID:        token.NewID("msg"),
		Content:   seed.WelcomeMessage(s.audience, s.userName),
		Sender:    model.SenderBot,
		Timestamp: time.Now(),
	}
}

// SendMessage 追加用户消息，经过模拟延迟后计算并追加助手应答。
// 空白输入是 no-op，返回 (nil, nil)。用户消息总是先于其应答出现在转录中。
func (s *assistantService) SendMessage(ctx context.Context, text string) (*model.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	s.mu.Lock()
	s.messages = append(s.messages, model.ChatMessage{
		ID:        token.NewID("msg"),
		Content:   text,
		Sender:    model.SenderUser,
		Timestamp: time.Now(),
	})
	s.state = StateAwaitingResponse
	audience, name := s.audience, s.userName
	s.mu.Unlock()

	// 模拟外部服务延迟；一旦开始总会完成
	time.Sleep(s.delay)

	content := s.computeReply(audience, name, text)

	botMsg := model.ChatMessage{
		ID:        token.NewID("msg"),
		Content:   content,
		Sender:    model.SenderBot,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, botMsg)
	s.state = StateIdle
	s.mu.Unlock()
	return &botMsg, nil
}

// computeReply 计算应答；任何 panic 都被转换为固定致歉语。
func (s *assistantService) computeReply(audience seed.Audience, name, input string) (content string) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("助手应答生成失败: %v", r)
			content = seed.ApologyReply
		}
	}()
	return s.reply(audience, input)
}

// Messages 返回当前转录的一份拷贝。
func (s *assistantService) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset 把转录截断回恰好一条欢迎消息。
func (s *assistantService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = s.messages[:1]
}

// ToggleVisible 翻转可见标记并返回新值；没有其他副作用。
func (s *assistantService) ToggleVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = !s.visible
	return s.visible
}

// State 返回状态机当前状态。
func (s *assistantService) State() AssistantState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EnsureAudience 在会话身份变化时重开助手会话：
// 替换面向的用户群体并把转录重置为新的欢迎消息。
func (s *assistantService) EnsureAudience(audience seed.Audience, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audience == audience && s.userName == name {
		return
	}
	s.audience = audience
	s.userName = name
	s.messages = []model.ChatMessage{s.welcome()}
	s.state = StateIdle
}
