package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"passvault/internal/config"
	"passvault/internal/handlers"
	"passvault/internal/model"
	"passvault/internal/repo"
	"passvault/internal/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Entry{}))

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	entrySvc := service.NewEntryService(repo.NewEntryRepository(db))
	h := handlers.NewHandler(userSvc, entrySvc, logger, cfg)
	return h.Router
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func registerAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	creds := map[string]string{"username": username, "password": "pass123"}
	rr := doJSON(t, router, http.MethodPost, "/auth/register", "", creds)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(t, router, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.Token)
	return tok.Token
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)
	creds := map[string]string{"username": "alice", "password": "pass123"}

	rr := doJSON(t, router, http.MethodPost, "/auth/register", "", creds)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Duplicate registration
	rr = doJSON(t, router, http.MethodPost, "/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Wrong password
	rr = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Valid login yields a token
	rr = doJSON(t, router, http.MethodPost, "/auth/login", "", creds)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "token")
}

func TestPasswords_RequireToken(t *testing.T) {
	router := newTestRouter(t)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodGet, "/passwords", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodPost, "/passwords", "", map[string]string{"service": "s", "login": "l", "password": "p"}).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodDelete, "/passwords/1", "", nil).Code)
}

func TestPasswords_CRUDFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	// Empty vault
	rr := doJSON(t, router, http.MethodGet, "/passwords", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	// Create two entries
	rr = doJSON(t, router, http.MethodPost, "/passwords", token, map[string]string{"service": "Google", "login": "user1", "password": "p1"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rr = doJSON(t, router, http.MethodPost, "/passwords", token, map[string]string{"service": "GitHub", "login": "dev", "password": "x"})
	require.Equal(t, http.StatusOK, rr.Code)

	// List preserves insertion order
	rr = doJSON(t, router, http.MethodGet, "/passwords", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Google", list[0]["service"])
	assert.Equal(t, "GitHub", list[1]["service"])

	// Update login+password; service stays
	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/passwords/%d", created.ID), token, map[string]string{"login": "user1-new", "password": "p1-new"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Google", updated["service"])
	assert.Equal(t, "user1-new", updated["login"])
	assert.Equal(t, "p1-new", updated["password"])

	// Delete
	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/passwords/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/passwords", token, nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestPasswords_Validation(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "alice")

	rr := doJSON(t, router, http.MethodPost, "/passwords", token, map[string]string{"service": "", "login": "l", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "required")

	rr = doJSON(t, router, http.MethodPut, "/passwords/notanumber", token, map[string]string{"login": "l", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPut, "/passwords/999", token, map[string]string{"login": "l", "password": "p"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/passwords/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPasswords_UsersAreIsolated(t *testing.T) {
	router := newTestRouter(t)
	aliceToken := registerAndLogin(t, router, "alice")
	bobToken := registerAndLogin(t, router, "bob")

	rr := doJSON(t, router, http.MethodPost, "/passwords", aliceToken, map[string]string{"service": "Google", "login": "user1", "password": "p1"})
	require.Equal(t, http.StatusOK, rr.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	// Bob sees nothing and cannot touch Alice's entry.
	rr = doJSON(t, router, http.MethodGet, "/passwords", bobToken, nil)
	assert.JSONEq(t, "[]", rr.Body.String())
	rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/passwords/%d", created.ID), bobToken, map[string]string{"login": "x", "password": "y"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/passwords/%d", created.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
