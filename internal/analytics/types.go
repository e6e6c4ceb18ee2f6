package analytics

import (
	"github.com/almonzeir/sudannnnn/internal/domain"
)

// ConversationMetrics summarizes the events of a single conversation.
// Derived on demand from the immutable event set, never persisted.
type ConversationMetrics struct {
	TotalEvents            int                     `json:"totalEvents"`
	MessagesSent           int                     `json:"messagesSent"`
	ResponsesReceived      int                     `json:"responsesReceived"`
	Errors                 int                     `json:"errors"`
	AverageResponseTime    float64                 `json:"averageResponseTime"`
	AverageConfidence      float64                 `json:"averageConfidence"`
	ConversationDurationMs int64                   `json:"conversationDuration"`
	Categories             map[domain.Category]int `json:"categories"`
}

// UserMetrics summarizes one user's activity over a time window.
type UserMetrics struct {
	TotalSessions       int                     `json:"totalSessions"`
	TotalConversations  int                     `json:"totalConversations"`
	TotalMessages       int                     `json:"totalMessages"`
	TotalResponses      int                     `json:"totalResponses"`
	TotalErrors         int                     `json:"totalErrors"`
	AverageResponseTime float64                 `json:"averageResponseTime"`
	AverageConfidence   float64                 `json:"averageConfidence"`
	MostActiveHours     map[int]int             `json:"mostActiveHours"`
	DailyActivity       map[string]int          `json:"dailyActivity"`
	ActiveDays          int                     `json:"activeDays"`
	CategoryBreakdown   map[domain.Category]int `json:"categoryBreakdown"`
	EngagementScore     float64                 `json:"engagementScore"`
}

// RetentionTally buckets users by how much of the observed activity span
// they were active for.
type RetentionTally struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// SystemMetrics summarizes activity across all users over a time window.
type SystemMetrics struct {
	TotalUsers           int                     `json:"totalUsers"`
	TotalSessions        int                     `json:"totalSessions"`
	TotalConversations   int                     `json:"totalConversations"`
	TotalMessages        int                     `json:"totalMessages"`
	TotalResponses       int                     `json:"totalResponses"`
	TotalErrors          int                     `json:"totalErrors"`
	AverageResponseTime  float64                 `json:"averageResponseTime"`
	AverageConfidence    float64                 `json:"averageConfidence"`
	ErrorRate            float64                 `json:"errorRate"`
	PeakHours            map[int]int             `json:"peakHours"`
	CategoryDistribution map[domain.Category]int `json:"categoryDistribution"`
	UserRetention        RetentionTally          `json:"userRetention"`
}

// InsightType classifies the severity of an insight.
type InsightType string

const (
	InsightInfo    InsightType = "info"
	InsightWarning InsightType = "warning"
	InsightError   InsightType = "error"
)

// Insight is a single human-readable observation derived from metrics.
type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// InsightsPayload is the full dashboard insight set for one metrics record.
type InsightsPayload struct {
	Performance     []Insight `json:"performance"`
	Usage           []Insight `json:"usage"`
	Recommendations []string  `json:"recommendations"`
}
