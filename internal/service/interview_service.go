package service

import (
	"errors"
	"internhub-go/internal/model"
	"internhub-go/internal/seed"
	"internhub-go/pkg/token"
	"sync"
	"time"
)

// ErrInterviewCompleted 表示目标面试已进入终态，不再接受任何变更。
var ErrInterviewCompleted = errors.New("interview already completed")

// InterviewService 接口定义了模拟面试流程的所有操作。
//
// 面试只存在于内存中（重启即丢失）。题目来自按角色划分的固定题库，
// 反馈全部是预置文本。CompletedAt 一旦写入，整场面试即为终态。
type InterviewService interface {
	Generate(role string) *model.MockInterview
	Get(id string) *model.MockInterview
	SubmitAnswer(interviewID, questionID, answer string) (*model.MockInterview, error)
	Complete(interviewID string) (*model.MockInterview, error)
}

type interviewService struct {
	mu         sync.Mutex
	interviews map[string]*model.MockInterview
}

// NewInterviewService 创建模拟面试服务。
func NewInterviewService() InterviewService {
	return &interviewService{interviews: make(map[string]*model.MockInterview)}
}

// Generate 为指定角色生成一场新的模拟面试（未收录的角色回退到通用题组）。
func (s *interviewService) Generate(role string) *model.MockInterview {
	questions := seed.InterviewQuestions(role)
	iv := &model.MockInterview{
		ID:   token.NewID("iv"),
		Role: role,
	}
	for _, q := range questions {
		iv.Questions = append(iv.Questions, model.InterviewQuestion{
			ID:       token.NewID("q"),
			Question: q,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.interviews[iv.ID] = iv
	out := *iv
	return &out
}

// Get 按 id 查找面试；未命中返回 nil。
func (s *interviewService) Get(id string) *model.MockInterview {
	s.mu.Lock()
	defer s.mu.Unlock()
	iv, ok := s.interviews[id]
	if !ok {
		return nil
	}
	out := *iv
	return &out
}

// SubmitAnswer 记录一道题的作答并附上预置反馈。
// 面试或题目未找到返回 (nil, nil)；终态面试返回 ErrInterviewCompleted。
func (s *interviewService) SubmitAnswer(interviewID, questionID, answer string) (*model.MockInterview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[interviewID]
	if !ok {
		return nil, nil
	}
	if iv.Completed() {
		return nil, ErrInterviewCompleted
	}

	found := false
	for i := range iv.Questions {
		if iv.Questions[i].ID == questionID {
			iv.Questions[i].Answer = answer
			iv.Questions[i].Feedback = seed.AnswerFeedback(answer)
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}
	out := *iv
	return &out, nil
}

// Complete 结束一场面试：写入总体反馈与 CompletedAt，此后面试进入终态。
func (s *interviewService) Complete(interviewID string) (*model.MockInterview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[interviewID]
	if !ok {
		return nil, nil
	}
	if iv.Completed() {
		return nil, ErrInterviewCompleted
	}

	answered := 0
	for _, q := range iv.Questions {
		if q.Answer != "" {
			answered++
		}
	}
	feedback := seed.OverallFeedback(answered, len(iv.Questions))
	iv.Feedback = &feedback
	now := time.Now()
	iv.CompletedAt = &now

	out := *iv
	return &out, nil
}
