package entity

import "time"

const (
	ConversationActive          = "active"
	ConversationWaitingForAdmin = "waiting_for_admin"
	ConversationClosed          = "closed"
)

type Conversation struct {
	ID            string    `json:"id" firestore:"id"`
	UserID        string    `json:"user_id" firestore:"userId"`
	Status        string    `json:"status" firestore:"status"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

const (
	MessageTypeUser  = "user"
	MessageTypeAdmin = "admin"
	MessageTypeAI    = "ai"
)

// ChatMessage is immutable once created. MessageType "admin" implies the
// sender holds the admin role; "ai" implies SenderID is empty.
type ChatMessage struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id,omitempty" firestore:"senderId,omitempty"`
	Content        string    `json:"content" firestore:"content"`
	MessageType    string    `json:"message_type" firestore:"messageType"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}
