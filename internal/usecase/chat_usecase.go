package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/infrastructure/querycache"
	"portfolia/internal/infrastructure/ratelimit"
	"portfolia/internal/infrastructure/realtime"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

const chatMessagesTable = "chat_messages"
const conversationsTable = "conversations"

// ChatUseCase owns the support-chat flow: one open conversation per visitor,
// admin replies, and the AI assistant offered when a conversation has waited
// too long for a human. The wait is a per-conversation scheduled timer,
// cancelled by an admin reply or a close, not a polling sweep.
type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	roleUC      *RoleUseCase
	bus         *realtime.Bus
	cache       *querycache.Cache
	notifier    *NotificationUseCase
	pusher      Pusher
	assistant   AIAssistant
	rateLimiter *ratelimit.RateLimiter
	aiWait      time.Duration

	timerMu  sync.Mutex
	aiTimers map[string]*time.Timer
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	roleUC *RoleUseCase,
	bus *realtime.Bus,
	cache *querycache.Cache,
	notifier *NotificationUseCase,
	pusher Pusher,
	assistant AIAssistant,
	aiWait time.Duration,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		roleUC:      roleUC,
		bus:         bus,
		cache:       cache,
		notifier:    notifier,
		pusher:      pusher,
		assistant:   assistant,
		rateLimiter: rateLimiter,
		aiWait:      aiWait,
		aiTimers:    make(map[string]*time.Timer),
	}
}

// SendUserMessage appends a visitor message, creating the conversation on
// first contact. The conversation then waits for an admin.
func (uc *ChatUseCase) SendUserMessage(ctx context.Context, userID, content string) (*entity.ChatMessage, error) {
	if userID == "" {
		return nil, errors.Unauthorized("Sign in to use the support chat", nil)
	}

	allowed, waitTime := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		return nil, errors.TooManyRequests("You are sending messages too quickly. Please slow down.", waitTime)
	}

	conv, err := uc.chatRepo.GetConversationByUser(ctx, userID)
	if errors.Is(err, "NOT_FOUND") {
		conv = &entity.Conversation{UserID: userID, Status: entity.ConversationActive}
		if err := uc.chatRepo.CreateConversation(ctx, conv); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ConversationID: conv.ID,
		SenderID:       userID,
		Content:        content,
		MessageType:    entity.MessageTypeUser,
	}
	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conv.Status = entity.ConversationWaitingForAdmin
	conv.LastMessage = content
	conv.LastMessageAt = message.CreatedAt
	if err := uc.chatRepo.UpdateConversation(ctx, conv); err != nil {
		return nil, err
	}

	uc.publishMessage(realtime.EventInsert, message)

	senderName := userID
	if sender, err := uc.userRepo.GetByID(ctx, userID); err == nil {
		senderName = sender.FullName
	}
	uc.notifier.Dispatch(ctx, entity.NotificationEvent{
		Title:      "New Chat Message",
		Body:       content,
		Type:       entity.NotifyChat,
		SenderName: senderName,
	})

	uc.scheduleAssistantOffer(conv.ID)

	return message, nil
}

// SendAdminMessage appends an admin reply. The conversation returns to
// active and any pending assistant offer is cancelled.
func (uc *ChatUseCase) SendAdminMessage(ctx context.Context, adminID, conversationID, content string) (*entity.ChatMessage, error) {
	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Status == entity.ConversationClosed {
		return nil, errors.Conflict("Conversation is closed")
	}

	message := &entity.ChatMessage{
		ConversationID: conversationID,
		SenderID:       adminID,
		Content:        content,
		MessageType:    entity.MessageTypeAdmin,
	}
	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conv.Status = entity.ConversationActive
	conv.LastMessage = content
	conv.LastMessageAt = message.CreatedAt
	if err := uc.chatRepo.UpdateConversation(ctx, conv); err != nil {
		return nil, err
	}

	uc.cancelAssistantOffer(conversationID)
	uc.publishMessage(realtime.EventInsert, message)

	return message, nil
}

// RequestAssistantReply lets the visitor accept the AI offer: the assistant
// answers from the transcript and the reply lands as a message_type=ai row
// with no sender.
func (uc *ChatUseCase) RequestAssistantReply(ctx context.Context, userID, conversationID string) (*entity.ChatMessage, error) {
	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID {
		return nil, errors.Forbidden("Not your conversation", nil)
	}
	if conv.Status == entity.ConversationClosed {
		return nil, errors.Conflict("Conversation is closed")
	}
	if uc.assistant == nil {
		return nil, errors.Internal("Assistant is not configured", nil)
	}

	history, _, err := uc.chatRepo.ListMessages(ctx, conversationID, 0, 0)
	if err != nil {
		return nil, err
	}

	reply, err := uc.assistant.Reply(ctx, history)
	if err != nil {
		return nil, errors.Internal("Assistant reply failed", err)
	}

	message := &entity.ChatMessage{
		ConversationID: conversationID,
		Content:        reply,
		MessageType:    entity.MessageTypeAI,
	}
	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conv.LastMessage = reply
	conv.LastMessageAt = message.CreatedAt
	if err := uc.chatRepo.UpdateConversation(ctx, conv); err != nil {
		return nil, err
	}

	uc.publishMessage(realtime.EventInsert, message)

	return message, nil
}

// GetMessages reads the conversation transcript through the query cache.
func (uc *ChatUseCase) GetMessages(ctx context.Context, userID, conversationID string) ([]*entity.ChatMessage, error) {
	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID && !uc.roleUC.IsAdmin(ctx, userID) {
		return nil, errors.Forbidden("Not your conversation", nil)
	}

	value, err := uc.cache.Read(ctx, messagesKey(conversationID), func(ctx context.Context) (interface{}, error) {
		messages, _, err := uc.chatRepo.ListMessages(ctx, conversationID, 0, 0)
		return messages, err
	})
	if err != nil {
		return nil, err
	}
	return value.([]*entity.ChatMessage), nil
}

// CanAccess reports whether the user may read a conversation: the owner or
// an admin. Used by the realtime layer to authorize live subscriptions.
func (uc *ChatUseCase) CanAccess(ctx context.Context, userID, conversationID string) bool {
	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return false
	}
	return conv.UserID == userID || uc.roleUC.IsAdmin(ctx, userID)
}

// MyConversation returns the visitor's open conversation, if any.
func (uc *ChatUseCase) MyConversation(ctx context.Context, userID string) (*entity.Conversation, error) {
	return uc.chatRepo.GetConversationByUser(ctx, userID)
}

// ListConversations is the admin inbox view.
func (uc *ChatUseCase) ListConversations(ctx context.Context, status string, limit, offset int) ([]*entity.Conversation, int64, error) {
	return uc.chatRepo.ListConversations(ctx, status, limit, offset)
}

// CloseConversation ends the thread; owner or admin only.
func (uc *ChatUseCase) CloseConversation(ctx context.Context, userID, conversationID string) error {
	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.UserID != userID && !uc.roleUC.IsAdmin(ctx, userID) {
		return errors.Forbidden("Not your conversation", nil)
	}

	conv.Status = entity.ConversationClosed
	if err := uc.chatRepo.UpdateConversation(ctx, conv); err != nil {
		return err
	}

	uc.cancelAssistantOffer(conversationID)
	uc.bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventUpdate,
		Table:        conversationsTable,
		New:          conv,
		FilterValues: map[string]string{"conversation_id": conv.ID, "user_id": conv.UserID},
	})

	return nil
}

func (uc *ChatUseCase) publishMessage(event realtime.ChangeType, message *entity.ChatMessage) {
	uc.bus.Publish(realtime.ChangeEvent{
		Event: event,
		Table: chatMessagesTable,
		New:   message,
		FilterValues: map[string]string{
			"conversation_id": message.ConversationID,
		},
	})
}

// scheduleAssistantOffer arms (or re-arms) the per-conversation timer. When
// it fires and the conversation is still waiting for an admin, the visitor is
// offered the AI assistant.
func (uc *ChatUseCase) scheduleAssistantOffer(conversationID string) {
	uc.timerMu.Lock()
	defer uc.timerMu.Unlock()

	if timer, ok := uc.aiTimers[conversationID]; ok {
		timer.Stop()
	}
	uc.aiTimers[conversationID] = time.AfterFunc(uc.aiWait, func() {
		uc.offerAssistant(conversationID)
	})
}

func (uc *ChatUseCase) cancelAssistantOffer(conversationID string) {
	uc.timerMu.Lock()
	defer uc.timerMu.Unlock()

	if timer, ok := uc.aiTimers[conversationID]; ok {
		timer.Stop()
		delete(uc.aiTimers, conversationID)
	}
}

func (uc *ChatUseCase) offerAssistant(conversationID string) {
	uc.timerMu.Lock()
	delete(uc.aiTimers, conversationID)
	uc.timerMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conv, err := uc.chatRepo.GetConversation(ctx, conversationID)
	if err != nil {
		logger.Warn("Assistant offer: conversation %s lookup failed: %v", conversationID, err)
		return
	}
	if conv.Status != entity.ConversationWaitingForAdmin {
		return
	}

	offer := map[string]interface{}{
		"kind":            "ai_offer",
		"conversation_id": conversationID,
		"message":         "No one has replied yet. Would you like an AI assistant to help?",
	}
	raw, _ := json.Marshal(offer)
	uc.pusher.SendToUser(conv.UserID, raw)
}
