package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAdminRepo struct {
	admin *model.Admin
	err   error
}

func (r *fakeAdminRepo) Create(admin *model.Admin) error { return nil }

func (r *fakeAdminRepo) FindByID(id uuid.UUID) (*model.Admin, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.admin != nil && r.admin.ID == id {
		return r.admin, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) FindByUsername(username string) (*model.Admin, error) {
	return nil, gorm.ErrRecordNotFound
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newGateFixture(repo *fakeAdminRepo, tokens *token.Manager) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAdmin(repo, tokens), func(c *fiber.Ctx) error {
		admin, ok := c.Locals("admin").(*model.Admin)
		if !ok {
			return c.SendStatus(500)
		}
		return c.JSON(fiber.Map{"username": admin.Username})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, envelope) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	json.Unmarshal(body, &env)
	return resp, env
}

func TestRequireAdminMissingToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	app := newGateFixture(&fakeAdminRepo{}, tokens)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		resp, env := doRequest(t, app, header)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "Access token required", env.Message)
	}
}

func TestRequireAdminInvalidToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	app := newGateFixture(&fakeAdminRepo{}, tokens)

	resp, env := doRequest(t, app, "Bearer not-a-token")
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "Access token is invalid or expired", env.Message)
}

func TestRequireAdminExpiredToken(t *testing.T) {
	expired := token.NewManager("secret", -time.Minute)
	signed, err := expired.Generate(uuid.New(), "alice")
	require.NoError(t, err)

	app := newGateFixture(&fakeAdminRepo{}, token.NewManager("secret", time.Hour))

	resp, env := doRequest(t, app, "Bearer "+signed)
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "Access token is invalid or expired", env.Message)
}

// A valid token whose admin has since been deleted must not pass the
// gate.
func TestRequireAdminDeletedAdmin(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	signed, err := tokens.Generate(uuid.New(), "ghost")
	require.NoError(t, err)

	app := newGateFixture(&fakeAdminRepo{}, tokens)

	resp, env := doRequest(t, app, "Bearer "+signed)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Not found this admin!", env.Message)
}

func TestRequireAdminStoreFailure(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	signed, err := tokens.Generate(uuid.New(), "alice")
	require.NoError(t, err)

	app := newGateFixture(&fakeAdminRepo{err: errors.New("connection refused")}, tokens)

	resp, env := doRequest(t, app, "Bearer "+signed)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Something went wrong", env.Message)
}

func TestRequireAdminSuccessAttachesAdmin(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	admin := &model.Admin{Username: "alice"}
	admin.ID = uuid.New()

	signed, err := tokens.Generate(admin.ID, admin.Username)
	require.NoError(t, err)

	app := newGateFixture(&fakeAdminRepo{admin: admin}, tokens)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "alice")
}
