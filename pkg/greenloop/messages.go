package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/types"
)

type MessagesService struct {
	c *httpclient.Client
}

type MessageSearchParams struct {
	Query            string
	ConversationWith string
	ExchangeID       string
	MessageType      string
	UnreadOnly       *bool
	PageParams
}

func (s *MessagesService) Conversations(ctx context.Context, page, limit int) (*types.ConversationList, error) {
	q := newQuery().integer("page", page).integer("limit", limit)
	return get[types.ConversationList](ctx, s.c, q.path(PathMessagesConversations), endpoint("messages.conversations"))
}

func (s *MessagesService) Conversation(ctx context.Context, userID string, page, limit int) ([]types.Message, error) {
	q := newQuery().integer("page", page).integer("limit", limit)
	return list[types.Message](ctx, s.c, q.path(join(PathMessagesConversation, userID)), endpoint("messages.conversation"))
}

func (s *MessagesService) Send(ctx context.Context, msg types.MessageSend) (*types.Message, error) {
	return post[types.Message](ctx, s.c, PathMessagesSend, msg, endpoint("messages.send"))
}

func (s *MessagesService) MarkRead(ctx context.Context, req types.MarkReadRequest) (types.Object, error) {
	out, err := put[types.Object](ctx, s.c, PathMessagesMarkRead, req, endpoint("messages.mark_read"))
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *MessagesService) Search(ctx context.Context, params MessageSearchParams) (*types.MessageSearchResult, error) {
	q := newQuery().
		str("query", params.Query).
		str("conversation_with", params.ConversationWith).
		str("exchange_id", params.ExchangeID).
		str("message_type", params.MessageType).
		flag("unread_only", params.UnreadOnly)
	params.apply(q, "page_size")
	return get[types.MessageSearchResult](ctx, s.c, q.path(PathMessagesSearch), endpoint("messages.search"))
}

func (s *MessagesService) Stats(ctx context.Context) (*types.MessageStats, error) {
	return get[types.MessageStats](ctx, s.c, PathMessagesStats, endpoint("messages.stats"))
}
