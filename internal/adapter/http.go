package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

type httpShopAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPShopAdapter constructs an HTTP/REST implementation of [ShopAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPShopAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ShopAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpShopAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
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

func (h *httpShopAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpShopAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpShopAdapter) Login(ctx context.Context, userName, email string) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{UserName: userName, Email: email}).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.JWT)
	h.logger.Debug().Str("user_name", userName).Msg("logged in")
	return result.JWT, nil
}

func (h *httpShopAdapter) CreateUser(ctx context.Context, req models.UserCreateRequest) error {
	return h.create(ctx, "/user", req)
}

func (h *httpShopAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.get(ctx, h.client.R(), "/user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpShopAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	req, err := h.authedRequest()
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = h.get(ctx, req, "/user/"+strconv.FormatInt(id, 10), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpShopAdapter) CreateProduct(ctx context.Context, req models.ProductCreateRequest) error {
	return h.create(ctx, "/product", req)
}

func (h *httpShopAdapter) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := h.get(ctx, h.client.R(), "/product", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (h *httpShopAdapter) Sitemap(ctx context.Context) (models.Sitemap, error) {
	var sitemap models.Sitemap
	if err := h.get(ctx, h.client.R(), "/", &sitemap); err != nil {
		return models.Sitemap{}, err
	}
	return sitemap, nil
}

// create POSTs body to path. The API answers a plain "ok" on success.
func (h *httpShopAdapter) create(ctx context.Context, path string, body any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("create request %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpShopAdapter) get(ctx context.Context, req *resty.Request, path string, result any) error {
	resp, err := req.
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("get request %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpShopAdapter) authedRequest() (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetAuthToken(token), nil
}
