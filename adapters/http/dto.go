package http

import (
	"context"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
)

// Profile DTOs

type ProfileResponse struct {
	Profile *profile.Document `json:"profile"`
	NewUser bool              `json:"newUser"`
}

type PatchProfileRequest struct {
	Path  string `json:"path" binding:"required"`
	Value any    `json:"value"`
}

type OnboardingRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	UseAI bool   `json:"useAi"`
}

type OnboardingResponse struct {
	Profile    *profile.Document `json:"profile"`
	OpenWizard bool              `json:"openWizard"`
}

// Editor DTOs

type FieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type ReorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type ValidateRequest struct {
	ID    string `json:"id"`
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type ValidateResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// AI DTOs

type PromptRequest struct {
	Prompt string `json:"prompt"`
}

type WizardRequest struct {
	Description string `json:"description"`
}

// AIResponse reports a generation. OK is false when the document was left
// unchanged; Alerts then says why.
type AIResponse struct {
	OK      bool              `json:"ok"`
	Text    string            `json:"text,omitempty"`
	Warning string            `json:"warning,omitempty"`
	Alerts  []string          `json:"alerts"`
	Notices []string          `json:"notices"`
	Profile *profile.Document `json:"profile,omitempty"`
}

// Transfer DTOs

type ImportResponse struct {
	Message string            `json:"message"`
	Profile *profile.Document `json:"profile"`
}

// messages collects what an operation surfaces to the user during one request.
type messages struct {
	mu      sync.Mutex
	alerts  []string
	notices []string
}

func newMessages() *messages {
	return &messages{alerts: []string{}, notices: []string{}}
}

func (m *messages) Alert(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, msg)
}

func (m *messages) Notice(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, msg)
}

func (m *messages) response(ok bool) AIResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return AIResponse{OK: ok, Alerts: m.alerts, Notices: m.notices}
}

// queryConfirmer approves destructive actions only when the request carries
// confirm=true. The prompt of a declined action is kept for the response.
type queryConfirmer struct {
	approved bool
	prompt   string
}

func newQueryConfirmer(c *gin.Context) *queryConfirmer {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return &queryConfirmer{approved: ok}
}

func (q *queryConfirmer) Confirm(_ context.Context, prompt string) bool {
	q.prompt = prompt
	return q.approved
}

var _ service.Confirmer = (*queryConfirmer)(nil)

func pathIndex(c *gin.Context, name string) (int, error) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperror.NewInvalidInput("'"+name+"' must be an integer", err)
	}
	return i, nil
}
