package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/footy-tipping/internal/config"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/utils"
	"github.com/MKhiriev/footy-tipping/models"
)

// traceIDHeader carries the request trace id to the server.
const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the request to
// POST /users/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/users/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return h.checkResponse(ctx, resp)
}

// Authenticate implements [ServerAdapter]. It POSTs the credentials to
// POST /users/authenticate and stores the returned token.
func (h *httpServerAdapter) Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthenticateResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/users/authenticate")
	if err != nil {
		return models.AuthenticateResponse{}, fmt.Errorf("authenticate request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return models.AuthenticateResponse{}, err
	}

	var authenticated models.AuthenticateResponse
	if err = json.Unmarshal(resp.Body(), &authenticated); err != nil {
		return models.AuthenticateResponse{}, fmt.Errorf("decode authenticate response: %w", err)
	}
	if authenticated.Token == "" {
		return models.AuthenticateResponse{}, errors.New("authenticate response carries no token")
	}

	h.SetToken(authenticated.Token)
	return authenticated, nil
}

// GetAll implements [ServerAdapter]. It GETs /users.
func (h *httpServerAdapter) GetAll(ctx context.Context) ([]models.User, error) {
	resp, err := h.request(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("get users request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return users, nil
}

// GetByID implements [ServerAdapter]. It GETs /users/{id}.
func (h *httpServerAdapter) GetByID(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return user, nil
}

// Update implements [ServerAdapter]. It PUTs the request to /users/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, id int64, req models.UpdateRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put("/users/{id}")
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return h.checkResponse(ctx, resp)
}

// Delete implements [ServerAdapter]. It sends DELETE /users/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return h.checkResponse(ctx, resp)
}

// Version implements [ServerAdapter]. It GETs /version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request starts a request carrying a fresh trace id and, when a token is
// held, the bearer Authorization header.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, utils.NewTraceID())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkResponse maps non-2xx responses to errors. A 401 drops the held
// token so that the next request goes out anonymously.
func (h *httpServerAdapter) checkResponse(ctx context.Context, resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) && h.Token() != "" {
		h.SetToken("")
		logger.FromContext(ctx).Info().
			Str("func", "*httpServerAdapter.checkResponse").
			Str("url", resp.Request.URL).
			Msg("server rejected the bearer token, token dropped")
	}
	return err
}
