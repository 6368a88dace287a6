package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greenloop-go/internal/fakebackend"
	"github.com/greenloop/greenloop-go/pkg/config"
	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

type harness struct {
	t   *testing.T
	srv *fakebackend.Server
	cfg *config.Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := fakebackend.New()
	t.Cleanup(srv.Close)
	return &harness{
		t:   t,
		srv: srv,
		cfg: &config.Config{
			API:    config.APIConfig{BaseURL: srv.URL(), ValidateResponses: true, UserAgent: "greenloop-test"},
			Tokens: config.TokenStoreConfig{Kind: config.TokenStoreLocal},
			LocalStore: config.LocalStoreConfig{
				Driver:       config.LocalDriverSQLite,
				DSN:          filepath.Join(t.TempDir(), "greenloop.db"),
				AutoMigrate:  true,
				MaxOpenConns: 1,
				MaxIdleConns: 1,
			},
		},
	}
}

func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	err := Run(context.Background(), args,
		WithConfig(h.cfg),
		WithLogger(logger.Nop()),
		WithOutput(&out, &errOut),
	)
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, _, err := h.run(args...)
	require.NoError(h.t, err, "greenloop %s", strings.Join(args, " "))
	return out
}

func (h *harness) login() {
	h.t.Helper()
	h.mustRun("login", "--email", fakebackend.AdminEmail, "--password", fakebackend.AdminPassword)
}

func TestLoginPersistsSessionAcrossRuns(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("login", "--email", fakebackend.AdminEmail, "--password", fakebackend.AdminPassword)
	assert.Contains(t, out, "Login successful")

	var me whoami
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("whoami", "--json")), &me))
	assert.Equal(t, fakebackend.AdminUserID, me.ID)
	assert.True(t, me.IsAdmin)
	assert.NotNil(t, me.ExpiresAt)
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	h := newHarness(t)
	var out bytes.Buffer
	root, closeApp := NewRootCommand(WithConfig(h.cfg), WithLogger(logger.Nop()), WithOutput(&out, &out))
	root.SetIn(strings.NewReader(fakebackend.MemberPassword + "\n"))
	root.SetArgs([]string{"login", "--email", fakebackend.MemberEmail})
	require.NoError(t, root.ExecuteContext(context.Background()))
	require.NoError(t, closeApp())
	assert.Contains(t, out.String(), "luis")
}

func TestLoginBadCredentials(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("login", "--email", fakebackend.AdminEmail, "--password", "nope")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized))
}

func TestLogoutClearsTokensAndLeavesFlash(t *testing.T) {
	h := newHarness(t)
	h.login()

	assert.Contains(t, h.mustRun("logout"), logoutFlash)

	_, _, err := h.run("whoami")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized))

	assert.Equal(t, logoutFlash+"\n", h.mustRun("flash"))
	assert.Empty(t, h.mustRun("flash"))
}

func TestItemsListSendsFilters(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("items", "list", "--query", "bici", "--min-value", "100", "--page", "1")
	assert.Contains(t, out, "Bicicleta de montaña")
	assert.Contains(t, out, "$350.50")

	req, ok := h.srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/api/v1/items", req.Path)
	assert.Contains(t, req.RawQuery, "min_value=100")
	assert.Contains(t, req.RawQuery, "query=bici")
	assert.Empty(t, req.Authorization())
}

func TestItemsListRejectsBadAmount(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("items", "list", "--min-value", "mucho")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--min-value")
}

func TestAdminItemsShowsLabels(t *testing.T) {
	h := newHarness(t)
	h.login()

	out := h.mustRun("admin", "items", "--status", "AVAILABLE")
	assert.Contains(t, out, "Disponible")
	assert.NotContains(t, out, "Intercambiado")
}

func TestExchangesShowFetchesParticipants(t *testing.T) {
	h := newHarness(t)
	h.login()

	out := h.mustRun("exchanges", "show", fakebackend.SeedExchangeID)
	assert.Contains(t, out, "solicitante: luis")
	assert.Contains(t, out, "propietario: ana")
}

func TestNotificationsUnreadFilter(t *testing.T) {
	h := newHarness(t)
	h.login()

	h.mustRun("notifications", "list", "--unread")
	req, ok := h.srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "is_read=false", req.RawQuery)
}

func TestMemoryTokenStoreOverride(t *testing.T) {
	h := newHarness(t)
	pair, err := h.srv.IssueTokens(fakebackend.MemberUserID)
	require.NoError(t, err)

	var out bytes.Buffer
	err = Run(context.Background(), []string{"whoami"},
		WithConfig(h.cfg),
		WithLogger(logger.Nop()),
		WithTokenStore(tokens.NewMemory(pair)),
		WithOutput(&out, &out),
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "luis")
}

func TestEducationProgressIsLocal(t *testing.T) {
	h := newHarness(t)

	h.mustRun("education", "complete", "reciclaje-101")
	h.mustRun("education", "complete", "reciclaje-101")
	h.mustRun("education", "quiz", "answer", "reciclaje-101", "q1=2", "q2=0")

	var completed map[string][]string
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("education", "list", "--json")), &completed))
	assert.Equal(t, []string{"reciclaje-101"}, completed["completed"])

	assert.Equal(t, "reciclaje-101: q1=2 q2=0\n", h.mustRun("education", "quiz", "show"))
	assert.Empty(t, h.srv.Requests())
}

func TestEventsAddAndList(t *testing.T) {
	h := newHarness(t)

	h.mustRun("events", "add", "--title", "Jornada de trueque", "--starts", "2026-11-02 10:00", "--location", "Parque Central")
	out := h.mustRun("events", "list")
	assert.Contains(t, out, "Jornada de trueque")
	assert.Contains(t, out, "Parque Central")

	_, _, err := h.run("events", "add", "--location", "sin título")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestProfilesKeepSeparateProgress(t *testing.T) {
	h := newHarness(t)

	h.mustRun("--profile", "ana", "education", "complete", "compostaje")
	var completed map[string][]string
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("--profile", "luis", "education", "list", "--json")), &completed))
	assert.Empty(t, completed["completed"])
}

func TestMetricsFlagDumpsRequests(t *testing.T) {
	h := newHarness(t)
	_, errOut, err := h.run("--metrics", "items", "get", "it-1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "greenloop_client_request_duration_seconds")
	assert.Contains(t, errOut, `endpoint="items.get"`)
}

func TestStoreValidateNeedsNoConfig(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), []string{"store", "validate"}, WithOutput(&out, &out))
	require.NoError(t, err)
}

func TestStoreNewMigration(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := Run(context.Background(), []string{"store", "new-migration", "add badges", "--dir", dir}, WithOutput(&out, &out))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "add_badges.sql")
}

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers([]string{"q1=3", "q2=0"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"q1": 3, "q2": 0}, answers)

	_, err = parseAnswers([]string{"q1"})
	assert.Error(t, err)
	_, err = parseAnswers([]string{"q1=x"})
	assert.Error(t, err)
}
