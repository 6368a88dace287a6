package greenloop

import (
	"context"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greenloop-go/internal/fakebackend"
	"github.com/greenloop/greenloop-go/pkg/enums"
	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/tokens"
	"github.com/greenloop/greenloop-go/pkg/types"
)

// newAPI returns a catalog signed in as subject, or anonymous when subject is empty.
func newAPI(t *testing.T, srv *fakebackend.Server, subject string) (*API, tokens.Pair) {
	t.Helper()
	var pair tokens.Pair
	if subject != "" {
		var err error
		pair, err = srv.IssueTokens(subject)
		require.NoError(t, err)
	}
	client, err := httpclient.New(srv.URL(), httpclient.WithTokenStore(tokens.NewMemory(pair)))
	require.NoError(t, err)
	return New(client), pair
}

func lastRequest(t *testing.T, srv *fakebackend.Server) fakebackend.Request {
	t.Helper()
	req, ok := srv.LastRequest()
	require.True(t, ok, "no request recorded")
	return req
}

func TestAdminItemsListSendsStatusFilterWithBearer(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, pair := newAPI(t, srv, fakebackend.AdminUserID)

	page, err := api.Admin.Items.List(context.Background(), AdminListParams{Status: "AVAILABLE"})
	require.NoError(t, err)

	req := lastRequest(t, srv)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, PathAdminItems, req.Path)
	assert.Equal(t, "status=AVAILABLE", req.RawQuery)
	assert.Equal(t, "Bearer "+pair.AccessToken, req.Authorization())

	require.Len(t, page.Items, 1)
	assert.Equal(t, "it-1", page.Items[0].ID)
	assert.Equal(t, enums.ItemStatusLabelAvailable, page.Items[0].StatusLabel)
	assert.Equal(t, pagination.ShapeArray, page.Shape)
}

func TestAdminItemsListTranslatesEveryStatus(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	page, err := api.Admin.Items.List(context.Background(), AdminListParams{})
	require.NoError(t, err)
	assert.Equal(t, "", lastRequest(t, srv).RawQuery)

	labels := map[string]enums.ItemStatusLabel{}
	for _, item := range page.Items {
		labels[item.ID] = item.StatusLabel
	}
	assert.Equal(t, map[string]enums.ItemStatusLabel{
		"it-1": enums.ItemStatusLabelAvailable,
		"it-2": enums.ItemStatusLabelReserved,
		"it-3": enums.ItemStatusLabelExchanged,
	}, labels)
	assert.Equal(t, 3, page.Total)
}

func TestAdminEndpointsForbiddenForMembers(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.MemberUserID)

	_, err := api.Admin.Users.List(context.Background(), AdminListParams{Search: "ana"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
	assert.Equal(t, "No tienes permisos para realizar esta acción", err.Error())
	assert.Equal(t, "search=ana", lastRequest(t, srv).RawQuery)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	// a stale token must not leak into the public login call
	client, err := httpclient.New(srv.URL(), httpclient.WithTokenStore(tokens.NewMemory(tokens.Pair{AccessToken: "stale"})))
	require.NoError(t, err)
	api := New(client)

	_, err = api.Auth.Login(context.Background(), types.LoginRequest{Email: fakebackend.AdminEmail, Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "No autorizado. Por favor, inicia sesión nuevamente", err.Error())

	apiErr := pkgerrors.As(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, pkgerrors.CodeUnauthorized, apiErr.Code())
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status())
	assert.Equal(t, fakebackend.BadCredentialsDetail, apiErr.Detail())

	req := lastRequest(t, srv)
	assert.Equal(t, PathAuthLogin, req.Path)
	assert.Empty(t, req.Authorization())
	assert.JSONEq(t, `{"email":"ana@greenloop.test","password":"wrong"}`, string(req.Body))
}

func TestAuthRegisterValidationErrorsAreAggregated(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, "")

	_, err := api.Auth.Register(context.Background(), types.RegisterRequest{})
	require.Error(t, err)
	assert.Equal(t,
		"Errores de validación: body.username: field required, body.email: field required, body.password: field required",
		err.Error())
	assert.Len(t, pkgerrors.As(err).FieldErrors(), 3)
}

func TestItemsListWithoutFiltersSendsNoQuery(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, "")

	page, err := api.Items.List(context.Background(), ItemSearchParams{})
	require.NoError(t, err)

	req := lastRequest(t, srv)
	assert.Equal(t, PathItems, req.Path)
	assert.Equal(t, "", req.RawQuery)
	assert.Equal(t, pagination.ShapeLegacy, page.Shape)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 20, page.Limit)
	assert.False(t, page.HasNext())
}

func TestItemsListEncodesFilters(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, "")

	minValue := decimal.RequireFromString("100.50")
	page, err := api.Items.List(context.Background(), ItemSearchParams{
		Query:      "bici",
		MinValue:   &minValue,
		PageParams: PageParams{Page: 1, PageSize: 5},
	})
	require.NoError(t, err)

	values, err := url.ParseQuery(lastRequest(t, srv).RawQuery)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"query":     {"bici"},
		"min_value": {"100.5"},
		"page":      {"1"},
		"page_size": {"5"},
	}, values)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Bicicleta de montaña", page.Items[0].Title)
	assert.Equal(t, "350.5", page.Items[0].EstimatedValue.String())
	assert.Equal(t, 5, page.Limit)
}

func TestItemsGetNotFound(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, "")

	_, err := api.Items.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "El recurso solicitado no existe", err.Error())
	assert.Equal(t, "Item not found", pkgerrors.As(err).Detail())
}

func TestItemPathsEscapeIDs(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, "")

	_, _ = api.Items.Get(context.Background(), "a b")
	assert.Equal(t, PathItems+"/a b", lastRequest(t, srv).Path)
}

func TestCategoriesAreAnonymous(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	page, err := api.Categories.List(context.Background(), PageParams{})
	require.NoError(t, err)
	assert.Empty(t, lastRequest(t, srv).Authorization())
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "Electrónica", page.Items[0].Name)

	cats, err := api.Items.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 3)
}

func TestNotificationsUsePaginatedEnvelope(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)
	ctx := context.Background()

	page, err := api.Notifications.List(ctx, NotificationListParams{})
	require.NoError(t, err)
	assert.Equal(t, pagination.ShapePaginated, page.Shape)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)

	unread, err := api.Notifications.List(ctx, NotificationListParams{IsRead: Bool(false)})
	require.NoError(t, err)
	assert.Equal(t, "is_read=false", lastRequest(t, srv).RawQuery)
	require.Len(t, unread.Items, 1)
	assert.Equal(t, enums.NotificationTypeExchangeRequest, unread.Items[0].NotificationType)
}

func TestExchangesListReadsResourceKey(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.MemberUserID)

	page, err := api.Exchanges.List(context.Background(), ExchangeListParams{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ana", page.Items[0].OtherUserUsername)
	assert.Equal(t, "Chamarra de mezclilla", page.Items[0].RequesterItemTitle)
	assert.Equal(t, pagination.ShapeLegacy, page.Shape)
}

func TestGetWithParticipants(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	full, err := api.Exchanges.GetWithParticipants(context.Background(), fakebackend.SeedExchangeID)
	require.NoError(t, err)
	assert.Equal(t, enums.ExchangeStatusPending, full.Exchange.Status)
	assert.Equal(t, "luis", full.Requester.Username)
	assert.Equal(t, "ana", full.Owner.Username)
	assert.Len(t, srv.Requests(), 3)
}

func TestGetWithParticipantsRejectsIncompleteExchange(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	srv.Respond(http.MethodGet, PathExchanges+"/ex-9", http.StatusOK, `{"id":"ex-9","status":"pending"}`)
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	_, err := api.Exchanges.GetWithParticipants(context.Background(), "ex-9")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInvalidResponse))
	assert.Len(t, srv.Requests(), 1)
}

func TestGetWithParticipantsPropagatesProfileError(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	srv.Respond(http.MethodGet, pathUsers+"/"+fakebackend.MemberUserID, http.StatusNotFound, `{"detail":"User not found"}`)
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	_, err := api.Exchanges.GetWithParticipants(context.Background(), fakebackend.SeedExchangeID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestUploadImagesSendsMultipart(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	form := httpclient.NewFormData().
		AddField("alt_text", "bici").
		AddFile("files", "frente.jpg", strings.NewReader("jpeg-1")).
		AddFile("files", "lado.jpg", strings.NewReader("jpeg-2"))

	out, err := api.Items.UploadImages(context.Background(), "it-1", form)
	require.NoError(t, err)
	assert.Len(t, out.UploadedImages, 2)
	assert.Equal(t, 2, out.TotalImages)
	assert.True(t, out.UploadedImages[0].IsPrimary)

	req := lastRequest(t, srv)
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
}

func TestUploadImagesForeignItemForbidden(t *testing.T) {
	srv := fakebackend.New()
	defer srv.Close()
	api, _ := newAPI(t, srv, fakebackend.AdminUserID)

	form := httpclient.NewFormData().AddFile("files", "x.jpg", strings.NewReader("x"))
	_, err := api.Items.UploadImages(context.Background(), "it-2", form)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
}
