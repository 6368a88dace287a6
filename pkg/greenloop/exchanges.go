package greenloop

import (
	"context"

	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
	"golang.org/x/sync/errgroup"
)

type ExchangesService struct {
	c *httpclient.Client
}

type ExchangeListParams struct {
	Status string
	Role   string
	PageParams
}

func (s *ExchangesService) List(ctx context.Context, params ExchangeListParams) (pagination.Page[types.ExchangeListItem], error) {
	q := newQuery().str("status", params.Status).str("role", params.Role)
	params.apply(q, "page_size")
	return getPage[types.ExchangeListItem](ctx, s.c, q.path(PathExchanges), "exchanges", endpoint("exchanges.list"))
}

func (s *ExchangesService) Get(ctx context.Context, exchangeID string) (*types.Exchange, error) {
	return get[types.Exchange](ctx, s.c, join(PathExchanges, exchangeID), endpoint("exchanges.get"))
}

// GetWithParticipants loads an exchange and then both participant profiles
// in parallel. The first failure cancels the other profile request.
func (s *ExchangesService) GetWithParticipants(ctx context.Context, exchangeID string) (*types.ExchangeWithParticipants, error) {
	exchange, err := s.Get(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if exchange.RequesterID == "" || exchange.OwnerID == "" {
		meta := pkgerrors.MetadataFor(pkgerrors.CodeInvalidResponse)
		return nil, pkgerrors.New(pkgerrors.CodeInvalidResponse, meta.PublicMessage).
			WithDetail("exchange " + exchangeID + " is missing participant ids")
	}

	users := &UsersService{c: s.c}
	out := &types.ExchangeWithParticipants{Exchange: *exchange}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		requester, err := users.Get(gctx, exchange.RequesterID)
		if err != nil {
			return err
		}
		out.Requester = *requester
		return nil
	})
	g.Go(func() error {
		owner, err := users.Get(gctx, exchange.OwnerID)
		if err != nil {
			return err
		}
		out.Owner = *owner
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExchangesService) Create(ctx context.Context, req types.ExchangeCreate) (*types.Exchange, error) {
	return post[types.Exchange](ctx, s.c, PathExchanges, req, endpoint("exchanges.create"))
}

func (s *ExchangesService) Update(ctx context.Context, exchangeID string, update types.ExchangeUpdate) (*types.Exchange, error) {
	return put[types.Exchange](ctx, s.c, join(PathExchanges, exchangeID), update, endpoint("exchanges.update"))
}

func (s *ExchangesService) Accept(ctx context.Context, exchangeID string) (*types.Exchange, error) {
	return s.transition(ctx, exchangeID, "accept", nil)
}

// Reject, Cancel and Complete accept an optional note.
func (s *ExchangesService) Reject(ctx context.Context, exchangeID string, note *types.ExchangeUpdate) (*types.Exchange, error) {
	return s.transition(ctx, exchangeID, "reject", note)
}

func (s *ExchangesService) Cancel(ctx context.Context, exchangeID string, note *types.ExchangeUpdate) (*types.Exchange, error) {
	return s.transition(ctx, exchangeID, "cancel", note)
}

func (s *ExchangesService) Complete(ctx context.Context, exchangeID string, note *types.ExchangeUpdate) (*types.Exchange, error) {
	return s.transition(ctx, exchangeID, "complete", note)
}

func (s *ExchangesService) Confirm(ctx context.Context, exchangeID string) (*types.Exchange, error) {
	return s.transition(ctx, exchangeID, "confirm", nil)
}

func (s *ExchangesService) Meeting(ctx context.Context, exchangeID string, meeting types.MeetingInfo) (*types.Exchange, error) {
	return post[types.Exchange](ctx, s.c, join(PathExchanges, exchangeID, "meeting"), meeting, endpoint("exchanges.meeting"))
}

func (s *ExchangesService) Messages(ctx context.Context, exchangeID string) ([]types.Message, error) {
	return list[types.Message](ctx, s.c, join(PathExchanges, exchangeID, "messages"), endpoint("exchanges.messages"))
}

func (s *ExchangesService) SendMessage(ctx context.Context, exchangeID string, msg types.MessageSend) (*types.Message, error) {
	return post[types.Message](ctx, s.c, join(PathExchanges, exchangeID, "messages"), msg, endpoint("exchanges.send_message"))
}

func (s *ExchangesService) Timeline(ctx context.Context, exchangeID string) ([]types.ExchangeTimelineEvent, error) {
	return list[types.ExchangeTimelineEvent](ctx, s.c, join(PathExchanges, exchangeID, "timeline"), endpoint("exchanges.timeline"))
}

func (s *ExchangesService) UserStats(ctx context.Context) (*types.ExchangeStats, error) {
	return get[types.ExchangeStats](ctx, s.c, PathExchangesUserStats, endpoint("exchanges.user_stats"))
}

func (s *ExchangesService) transition(ctx context.Context, exchangeID, action string, note *types.ExchangeUpdate) (*types.Exchange, error) {
	var body any
	if note != nil {
		body = note
	}
	return post[types.Exchange](ctx, s.c, join(PathExchanges, exchangeID, action), body, endpoint("exchanges."+action))
}
