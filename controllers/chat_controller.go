package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"symbi_server/models"
	"symbi_server/services"

	"github.com/google/uuid"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleGetChats serves the inbox: all chats for the authenticated user,
// grouped by match status. Unauthenticated callers are rejected distinctly
// from internal failures, and failures never return partial data.
func (c *ChatController) HandleGetChats(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		http.Error(w, `{"error": "Authentication required"}`, http.StatusUnauthorized)
		return
	}

	groups, err := c.ChatService.GetChatsForUser(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch chats for %s: %v", userID, err)
		http.Error(w, `{"error": "Internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(groups)
}

// HandleGetMessages fetches message history for a chat, newest first
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chatId")
	if chatID == "" {
		http.Error(w, `{"error": "chatId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	messages, err := c.ChatService.GetMessagesByChatID(r.Context(), chatID, limit)
	if err != nil {
		log.Printf("❌ Error fetching messages for chat %s: %v", chatID, err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleSendMessage appends a new message to a chat
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if message.ChatID == "" || message.SenderID == "" || message.Content == "" {
		http.Error(w, `{"error": "Missing required fields: chatId, senderId, or content"}`, http.StatusBadRequest)
		return
	}

	if message.MessageID == "" {
		message.MessageID = uuid.NewString()
	}
	message.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := c.ChatService.SendMessage(r.Context(), message); err != nil {
		log.Printf("❌ Failed to send message to chat %s: %v", message.ChatID, err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": "Message sent successfully",
	})
}
