package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mssbox/blindboxctl/internal/models"
)

// API is the endpoint surface the view layer depends on. The concrete Client
// satisfies it; tests provide lightweight fakes.
type API interface {
	Login(ctx context.Context, email, password string) (Envelope[LoginData], error)

	Brands(ctx context.Context) (Envelope[[]models.Brand], error)
	CreateBrand(ctx context.Context, in models.BrandInput) (Envelope[models.Brand], error)
	UpdateBrand(ctx context.Context, id int64, in models.BrandInput) (Envelope[models.Brand], error)
	DeleteBrand(ctx context.Context, id int64) (Envelope[json.RawMessage], error)

	BlindBoxes(ctx context.Context) (Envelope[[]models.BlindBox], error)
	Categories(ctx context.Context) (Envelope[[]models.Category], error)
	CreateBlindBox(ctx context.Context, in models.BlindBoxInput) (Envelope[models.BlindBox], error)
	UpdateBlindBox(ctx context.Context, id int64, in models.BlindBoxInput) (Envelope[models.BlindBox], error)
	DeleteBlindBox(ctx context.Context, id int64) (Envelope[json.RawMessage], error)
}

var _ API = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. No token is attached (none is
// held yet); the caller commits the returned token and account to the state
// container on envelope success.
func (c *Client) Login(ctx context.Context, email, password string) (Envelope[LoginData], error) {
	return doJSON[LoginData](ctx, c, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
}

func (c *Client) Brands(ctx context.Context) (Envelope[[]models.Brand], error) {
	return doJSON[[]models.Brand](ctx, c, http.MethodGet, "/brands/all", nil)
}

func (c *Client) CreateBrand(ctx context.Context, in models.BrandInput) (Envelope[models.Brand], error) {
	return doJSON[models.Brand](ctx, c, http.MethodPost, "/brands/create", in)
}

func (c *Client) UpdateBrand(ctx context.Context, id int64, in models.BrandInput) (Envelope[models.Brand], error) {
	return doJSON[models.Brand](ctx, c, http.MethodPut, fmt.Sprintf("/brands/update/%d", id), in)
}

func (c *Client) DeleteBrand(ctx context.Context, id int64) (Envelope[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("/brands/delete/%d", id), nil)
}

func (c *Client) BlindBoxes(ctx context.Context) (Envelope[[]models.BlindBox], error) {
	return doJSON[[]models.BlindBox](ctx, c, http.MethodGet, "/blindboxes/all", nil)
}

func (c *Client) Categories(ctx context.Context) (Envelope[[]models.Category], error) {
	return doJSON[[]models.Category](ctx, c, http.MethodGet, "/blindboxes/categories", nil)
}

func (c *Client) CreateBlindBox(ctx context.Context, in models.BlindBoxInput) (Envelope[models.BlindBox], error) {
	return doJSON[models.BlindBox](ctx, c, http.MethodPost, "/blindboxes/create", in)
}

func (c *Client) UpdateBlindBox(ctx context.Context, id int64, in models.BlindBoxInput) (Envelope[models.BlindBox], error) {
	return doJSON[models.BlindBox](ctx, c, http.MethodPut, fmt.Sprintf("/blindboxes/update/%d", id), in)
}

func (c *Client) DeleteBlindBox(ctx context.Context, id int64) (Envelope[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, fmt.Sprintf("/blindboxes/delete/%d", id), nil)
}
