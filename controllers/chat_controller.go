package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Archismita-Das/HealthifyMe/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{svc: svc}
}

type chatBody struct {
	Message string `json:"message"`
}

// Chat handles POST /api/chat: validate, forward, classify. The blank
// check runs before any outbound call.
func (cc *ChatController) Chat(c *gin.Context) {
	var body chatBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"reply": "Please enter a message to chat with me!",
		})
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Message cannot be empty",
			"reply": "Please enter a message to chat with me!",
		})
		return
	}

	result := cc.svc.Send(body.Message)
	switch result.Outcome {
	case services.ChatOK:
		c.JSON(http.StatusOK, result.Body)
	case services.ChatRejected:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Chatbot error",
			"reply":   "Sorry, I encountered an error processing your request. Please try again.",
			"details": result.Detail,
		})
	case services.ChatUnreachable:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Chatbot service unavailable",
			"reply":   "The chatbot service is currently offline. Please try again later.",
			"details": result.Detail,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"reply":   "An unexpected error occurred. Please try again later.",
			"details": result.Detail,
		})
	}
}

// Health handles GET /api/chat/health: reachability probe only, no
// message is forwarded.
func (cc *ChatController) Health(c *gin.Context) {
	ok, detail := cc.svc.Healthy()
	if ok {
		c.JSON(http.StatusOK, gin.H{
			"chatbot_status": "online",
			"chatbot_url":    cc.svc.URL(),
			"message":        "Chat service is reachable",
		})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"chatbot_status": "offline",
		"chatbot_url":    cc.svc.URL(),
		"message":        "Chat service is NOT reachable",
		"error":          detail,
	})
}

// Test handles GET /api/test, a plain liveness probe for the backend
// itself.
func Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "HealthifyMe backend is running!",
		"timestamp": time.Now().UnixMilli(),
	})
}
