package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	var out domain.User
	if err := c.postJSON(ctx, "/api/users/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login opens a backend session; the session cookie lands in the client's
// jar and rides along on every later call.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var out domain.User
	if err := c.postJSON(ctx, "/api/users/login", LoginRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/users/logout", nil, nil)
}

// Me answers "who am I" for the current backend session.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.get(ctx, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe updates the current user's profile.
func (c *Client) UpdateMe(ctx context.Context, u domain.User) (*domain.User, error) {
	var out domain.User
	if err := c.putJSON(ctx, "/api/users/me", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// User fetches a user by username.
func (c *Client) User(ctx context.Context, username string) (*domain.User, error) {
	var out domain.User
	if err := c.get(ctx, "/api/users/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lists every account (admin).
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.get(ctx, "/api/users/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminUpdateUser edits any account by id (admin).
func (c *Client) AdminUpdateUser(ctx context.Context, id int64, u domain.User) (*domain.User, error) {
	var out domain.User
	if err := c.putJSON(ctx, fmt.Sprintf("/api/users/admin/%d", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserOrderStats fetches total orders and amount spent for one user.
func (c *Client) UserOrderStats(ctx context.Context, userID int64) (*domain.OrderStats, error) {
	var out domain.OrderStats
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d/order-stats", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
