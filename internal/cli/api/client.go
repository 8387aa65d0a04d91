package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"passvault/internal/cli/model"
	"passvault/internal/cli/session"
	"passvault/internal/config"
)

// Client wraps every network operation against the vault server behind a
// uniform request shape: attach the current token, send, classify the
// outcome. It performs no retries: a retried mutation could produce a
// duplicate write.
type Client struct {
	baseURL string
	session *session.Store
	http    *http.Client
}

// New creates a vault client bound to the session store that supplies (and
// receives) tokens.
func New(cfg *config.Config, s *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		session: s,
		http:    http.DefaultClient,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type entryRequest struct {
	Service  string `json:"service"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type entryUpdateRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and persists it before returning,
// so every later authenticated call can rely on the stored session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", credentialsRequest{Username: username, Password: password}, false)
	if err != nil {
		return err
	}
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil || tr.Token == "" {
		return &Failure{Kind: FailureUnknown, Message: "server returned no token", Err: err}
	}
	if err := c.session.Save(tr.Token); err != nil {
		return &Failure{Kind: FailureUnknown, Message: "saving session", Err: err}
	}
	return nil
}

// Register creates an account. The server returns no token; the user logs in
// afterwards.
func (c *Client) Register(ctx context.Context, username, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", credentialsRequest{Username: username, Password: password}, false)
	return err
}

// List fetches the full credential list in server order.
func (c *Client) List(ctx context.Context) ([]model.Entry, error) {
	body, err := c.do(ctx, http.MethodGet, "/passwords", nil, true)
	if err != nil {
		return nil, err
	}
	var entries []model.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &Failure{Kind: FailureUnknown, Message: "decoding entry list", Err: err}
	}
	return entries, nil
}

// Create stores a new entry and returns it with the server-assigned id.
func (c *Client) Create(ctx context.Context, service, login, password string) (*model.Entry, error) {
	body, err := c.do(ctx, http.MethodPost, "/passwords", entryRequest{Service: service, Login: login, Password: password}, true)
	if err != nil {
		return nil, err
	}
	return decodeEntry(body)
}

// Update replaces the login and secret of an existing entry. The service
// name is fixed at creation time.
func (c *Client) Update(ctx context.Context, id int64, login, password string) (*model.Entry, error) {
	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/passwords/%d", id), entryUpdateRequest{Login: login, Password: password}, true)
	if err != nil {
		return nil, err
	}
	return decodeEntry(body)
}

// Delete removes an entry by id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/passwords/%d", id), nil, true)
	return err
}

func decodeEntry(body []byte) (*model.Entry, error) {
	var e model.Entry
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, &Failure{Kind: FailureUnknown, Message: "decoding entry", Err: err}
	}
	return &e, nil
}

// do sends one JSON request and classifies the outcome. Authenticated calls
// attach the current token as a bearer credential; with no token stored the
// call is not attempted at all.
func (c *Client) do(ctx context.Context, method, path string, payload any, authed bool) ([]byte, error) {
	var token string
	if authed {
		token = c.session.Current()
		if token == "" {
			return nil, &Failure{Kind: FailureAuthMissing, Message: "not logged in"}
		}
	}

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &Failure{Kind: FailureUnknown, Err: err}
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &Failure{Kind: FailureUnknown, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Failure{Kind: FailureNetwork, Err: err}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized && authed:
		// The server no longer accepts our token: the session is over.
		_ = c.session.Clear()
		return nil, &Failure{Kind: FailureAuthMissing, Message: "session expired, log in again"}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &Failure{Kind: FailureValidation, Message: strings.TrimSpace(string(body))}
	default:
		return nil, &Failure{Kind: FailureUnknown, Message: fmt.Sprintf("server returned status %d", resp.StatusCode)}
	}
}
