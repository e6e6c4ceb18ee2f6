package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/almonzeir/sudannnnn/docs"
	"github.com/almonzeir/sudannnnn/internal/dto"
	"github.com/almonzeir/sudannnnn/internal/service"
)

type Handler struct {
	chatService      service.ChatServicer
	telemetryService service.TelemetryServicer
	router           *gin.Engine
	log              *zap.Logger
}

func NewHandler(chatService service.ChatServicer, telemetryService service.TelemetryServicer, log *zap.Logger) *Handler {
	h := &Handler{
		chatService:      chatService,
		telemetryService: telemetryService,
		router:           gin.Default(),
		log:              log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/chat/send", h.sendMessage)
	h.router.GET("/metrics/conversations/:id", h.getConversationMetrics)
	h.router.GET("/metrics/users/:id", h.getUserMetrics)
	h.router.GET("/metrics/system", h.getSystemMetrics)
	h.router.GET("/insights", h.getInsights)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// sendMessage handles POST /chat/send
// @Summary Send a chat message
// @Description Send a message to the assistant and receive the scored reply
// @Tags chat
// @Accept json
// @Produce json
// @Param message body dto.SendMessageRequest true "Chat turn"
// @Param X-Session-Id header string false "Client session id"
// @Success 200 {object} dto.SendMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/send [post]
func (h *Handler) sendMessage(c *gin.Context) {
	var req dto.SendMessageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	result, err := h.chatService.Send(c.Request.Context(), &service.SendInput{
		Message:        req.Message,
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
		SessionID:      c.GetHeader("X-Session-Id"),
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
	})
	if err != nil {
		h.log.Error("Failed to process chat turn",
			zap.String("conversation_id", req.ConversationID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Chat turn processed",
		zap.String("conversation_id", result.ConversationID),
		zap.String("category", string(result.Assessment.Category)),
		zap.Float64("confidence", result.Assessment.Confidence),
		zap.Int64("response_time_ms", result.ResponseTimeMs))

	c.JSON(http.StatusOK, dto.SendMessageResponse{
		Response:       result.Response,
		ConversationID: result.ConversationID,
		SessionID:      result.SessionID,
		Metadata: dto.ResponseMetadata{
			Confidence:     result.Assessment.Confidence,
			Category:       string(result.Assessment.Category),
			ResponseTimeMs: result.ResponseTimeMs,
		},
	})
}

// getConversationMetrics handles GET /metrics/conversations/:id
// @Summary Get conversation metrics
// @Description Retrieve metrics recomputed from one conversation's events
// @Tags metrics
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} analytics.ConversationMetrics
// @Failure 502 {object} dto.ErrorResponse
// @Router /metrics/conversations/{id} [get]
func (h *Handler) getConversationMetrics(c *gin.Context) {
	conversationID := c.Param("id")

	metrics, err := h.telemetryService.GetConversationMetrics(c.Request.Context(), conversationID)
	if err != nil {
		h.metricsUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getUserMetrics handles GET /metrics/users/:id
// @Summary Get user metrics
// @Description Retrieve one user's metrics over a trailing window of days
// @Tags metrics
// @Produce json
// @Param id path string true "User id"
// @Param timeframe_days query int false "Window size in days (default 30)"
// @Success 200 {object} analytics.UserMetrics
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /metrics/users/{id} [get]
func (h *Handler) getUserMetrics(c *gin.Context) {
	var req dto.TimeframeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	metrics, err := h.telemetryService.GetUserMetrics(c.Request.Context(), c.Param("id"), req.TimeframeDays)
	if err != nil {
		h.metricsUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getSystemMetrics handles GET /metrics/system
// @Summary Get system metrics
// @Description Retrieve system-wide metrics over a trailing window of days
// @Tags metrics
// @Produce json
// @Param timeframe_days query int false "Window size in days (default 7)"
// @Success 200 {object} analytics.SystemMetrics
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /metrics/system [get]
func (h *Handler) getSystemMetrics(c *gin.Context) {
	var req dto.TimeframeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	metrics, err := h.telemetryService.GetSystemMetrics(c.Request.Context(), req.TimeframeDays)
	if err != nil {
		h.metricsUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getInsights handles GET /insights
// @Summary Get insights
// @Description Derive performance/usage insights and recommendations for a user or the whole system
// @Tags insights
// @Produce json
// @Param user_id query string false "Scope to one user"
// @Param timeframe_days query int false "Window size in days"
// @Success 200 {object} analytics.InsightsPayload
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /insights [get]
func (h *Handler) getInsights(c *gin.Context) {
	var req dto.GetInsightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	insights, err := h.telemetryService.GenerateInsights(c.Request.Context(), req.UserID, req.TimeframeDays)
	if err != nil {
		h.metricsUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// metricsUnavailable distinguishes "event store unreachable" from "zero
// activity": the former is an explicit 502, the latter an ordinary 200 with
// zero counts.
func (h *Handler) metricsUnavailable(c *gin.Context, err error) {
	h.log.Error("Metrics unavailable", zap.Error(err))
	c.JSON(http.StatusBadGateway, dto.ErrorResponse{
		Error:   "metrics_unavailable",
		Message: err.Error(),
	})
}
