package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/analytics"
	"github.com/almonzeir/sudannnnn/internal/domain"
	"github.com/almonzeir/sudannnnn/internal/dto"
	"github.com/almonzeir/sudannnnn/internal/scoring"
	"github.com/almonzeir/sudannnnn/internal/service"
)

// MockChatService is a mock implementation of service.ChatServicer
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Send(ctx context.Context, input *service.SendInput) (*service.SendResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SendResult), args.Error(1)
}

// MockTelemetryService is a mock implementation of service.TelemetryServicer
type MockTelemetryService struct {
	mock.Mock
}

func (m *MockTelemetryService) LogEvent(ctx context.Context, input *service.EventInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockTelemetryService) GetConversationMetrics(ctx context.Context, conversationID string) (*analytics.ConversationMetrics, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.ConversationMetrics), args.Error(1)
}

func (m *MockTelemetryService) GetUserMetrics(ctx context.Context, userID string, timeframeDays int) (*analytics.UserMetrics, error) {
	args := m.Called(ctx, userID, timeframeDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.UserMetrics), args.Error(1)
}

func (m *MockTelemetryService) GetSystemMetrics(ctx context.Context, timeframeDays int) (*analytics.SystemMetrics, error) {
	args := m.Called(ctx, timeframeDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.SystemMetrics), args.Error(1)
}

func (m *MockTelemetryService) GenerateInsights(ctx context.Context, userID string, timeframeDays int) (*analytics.InsightsPayload, error) {
	args := m.Called(ctx, userID, timeframeDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.InsightsPayload), args.Error(1)
}

func newTestHandler() (*Handler, *MockChatService, *MockTelemetryService) {
	mockChat := new(MockChatService)
	mockTelemetry := new(MockTelemetryService)
	log := zap.NewNop()

	return NewHandler(mockChat, mockTelemetry, log), mockChat, mockTelemetry
}

func TestHandler_HealthCheck(t *testing.T) {
	handler, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_SendMessage_Success(t *testing.T) {
	handler, mockChat, _ := newTestHandler()

	result := &service.SendResult{
		Response:       "For a fever, rest and drink fluids.",
		ConversationID: "conv1",
		SessionID:      "sess1",
		ResponseTimeMs: 1450,
		Assessment: scoring.Assessment{
			Confidence: 0.8,
			Category:   domain.CategoryMedical,
		},
	}

	mockChat.On("Send", mock.Anything, mock.MatchedBy(func(input *service.SendInput) bool {
		return input.Message == "I have a fever" &&
			input.UserID == "user1" &&
			input.SessionID == "sess-header"
	})).Return(result, nil)

	body, _ := json.Marshal(dto.SendMessageRequest{
		Message: "I have a fever",
		UserID:  "user1",
	})
	req := httptest.NewRequest(http.MethodPost, "/chat/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "sess-header")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.SendMessageResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "For a fever, rest and drink fluids.", response.Response)
	assert.Equal(t, "conv1", response.ConversationID)
	assert.Equal(t, "sess1", response.SessionID)
	assert.Equal(t, "medical", response.Metadata.Category)
	assert.InDelta(t, 0.8, response.Metadata.Confidence, 1e-9)
	assert.Equal(t, int64(1450), response.Metadata.ResponseTimeMs)
	mockChat.AssertExpectations(t)
}

func TestHandler_SendMessage_MissingMessage(t *testing.T) {
	handler, mockChat, _ := newTestHandler()

	body := []byte(`{"user_id": "user1"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockChat.AssertNotCalled(t, "Send")
}

func TestHandler_SendMessage_MessageTooLong(t *testing.T) {
	handler, mockChat, _ := newTestHandler()

	body, _ := json.Marshal(dto.SendMessageRequest{
		Message: strings.Repeat("a", 4001),
	})
	req := httptest.NewRequest(http.MethodPost, "/chat/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockChat.AssertNotCalled(t, "Send")
}

func TestHandler_SendMessage_ServiceError(t *testing.T) {
	handler, mockChat, _ := newTestHandler()

	mockChat.On("Send", mock.Anything, mock.Anything).Return(nil, errors.New("unexpected failure"))

	body, _ := json.Marshal(dto.SendMessageRequest{Message: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/chat/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
}

func TestHandler_GetConversationMetrics_Success(t *testing.T) {
	handler, _, mockTelemetry := newTestHandler()

	metrics := &analytics.ConversationMetrics{
		TotalEvents:       4,
		MessagesSent:      2,
		ResponsesReceived: 2,
		Categories:        map[domain.Category]int{domain.CategoryMedical: 2},
	}

	mockTelemetry.On("GetConversationMetrics", mock.Anything, "conv1").Return(metrics, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/conversations/conv1", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response analytics.ConversationMetrics
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 4, response.TotalEvents)
	assert.Equal(t, 2, response.MessagesSent)
	mockTelemetry.AssertExpectations(t)
}

func TestHandler_GetConversationMetrics_StoreUnavailable(t *testing.T) {
	handler, _, mockTelemetry := newTestHandler()

	repoErr := errors.New("clickhouse connection refused")
	mockTelemetry.On("GetConversationMetrics", mock.Anything, "conv1").Return(nil, repoErr)

	req := httptest.NewRequest(http.MethodGet, "/metrics/conversations/conv1", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "metrics_unavailable", response.Error)
}

func TestHandler_GetUserMetrics_PassesTimeframe(t *testing.T) {
	handler, _, mockTelemetry := newTestHandler()

	metrics := &analytics.UserMetrics{TotalMessages: 5, EngagementScore: 62.5}
	mockTelemetry.On("GetUserMetrics", mock.Anything, "user1", 14).Return(metrics, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/users/user1?timeframe_days=14", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response analytics.UserMetrics
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 5, response.TotalMessages)
	assert.InDelta(t, 62.5, response.EngagementScore, 1e-9)
	mockTelemetry.AssertExpectations(t)
}

func TestHandler_GetSystemMetrics_DefaultTimeframe(t *testing.T) {
	handler, _, mockTelemetry := newTestHandler()

	metrics := &analytics.SystemMetrics{TotalUsers: 12}
	mockTelemetry.On("GetSystemMetrics", mock.Anything, 0).Return(metrics, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/system", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response analytics.SystemMetrics
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 12, response.TotalUsers)
	mockTelemetry.AssertExpectations(t)
}

func TestHandler_GetInsights_UserScope(t *testing.T) {
	handler, _, mockTelemetry := newTestHandler()

	payload := &analytics.InsightsPayload{
		Performance:     []analytics.Insight{},
		Usage:           []analytics.Insight{},
		Recommendations: []string{"Review error logs and implement better error handling"},
	}

	mockTelemetry.On("GenerateInsights", mock.Anything, "user1", 7).Return(payload, nil)

	req := httptest.NewRequest(http.MethodGet, "/insights?user_id=user1&timeframe_days=7", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response analytics.InsightsPayload
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Recommendations, 1)
	mockTelemetry.AssertExpectations(t)
}

func TestHandler_GetInsights_StoreUnavailable(t *testing.T) {
	handler, _, mockTelemetry := newTestHandler()

	repoErr := errors.New("query timeout")
	mockTelemetry.On("GenerateInsights", mock.Anything, "", 0).Return(nil, repoErr)

	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "metrics_unavailable", response.Error)
}
