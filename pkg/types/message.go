package types

import (
	"time"

	"github.com/greenloop/greenloop-go/pkg/enums"
)

type Message struct {
	ID          string            `json:"id" validate:"required"`
	Content     string            `json:"content"`
	MessageType enums.MessageType `json:"message_type"`
	SenderID    string            `json:"sender_id"`
	ReceiverID  string            `json:"receiver_id"`
	ExchangeID  *string           `json:"exchange_id,omitempty"`
	ReplyToID   *string           `json:"reply_to_id,omitempty"`
	IsRead      bool              `json:"is_read"`
	Metadata    Object            `json:"metadata,omitempty"`
	Sender      Object            `json:"sender,omitempty"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
	ReadAt      *time.Time        `json:"read_at,omitempty"`
}

type MessageSend struct {
	Content     string            `json:"content"`
	MessageType enums.MessageType `json:"message_type,omitempty"`
	ReceiverID  string            `json:"receiver_id"`
	ExchangeID  *string           `json:"exchange_id,omitempty"`
	ReplyToID   *string           `json:"reply_to_id,omitempty"`
	Metadata    Object            `json:"metadata,omitempty"`
}

type Conversation struct {
	OtherUser   Object   `json:"other_user"`
	LastMessage *Message `json:"last_message,omitempty"`
	UnreadCount int      `json:"unread_count"`
	ExchangeID  *string  `json:"exchange_id,omitempty"`
}

type ConversationList struct {
	Conversations       []Conversation `json:"conversations"`
	Total               int            `json:"total"`
	UnreadConversations int            `json:"unread_conversations"`
	TotalUnreadMessages int            `json:"total_unread_messages"`
}

type MarkReadRequest struct {
	MessageIDs       []string `json:"message_ids,omitempty"`
	ConversationWith *string  `json:"conversation_with,omitempty"`
}

type MessageSearchResult struct {
	Messages   []Message `json:"messages"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

type MessageStats struct {
	TotalSent           int `json:"total_sent"`
	TotalReceived       int `json:"total_received"`
	UnreadMessages      int `json:"unread_messages"`
	ActiveConversations int `json:"active_conversations"`
}
