package admin

import (
	"context"
	"strings"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type UserBackend interface {
	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, username string) (*domain.User, error)
	AdminUpdateUser(ctx context.Context, id int64, u domain.User) (*domain.User, error)
	UserOrderStats(ctx context.Context, userID int64) (*domain.OrderStats, error)
}

// Users manages the account table. The backend exposes no paginated user
// endpoint, so the table loads the full list and filters client-side.
type Users struct {
	backend UserBackend
}

func NewUsers(b UserBackend) *Users {
	return &Users{backend: b}
}

func (u *Users) Load(ctx context.Context) ([]domain.User, error) {
	return u.backend.Users(ctx)
}

// Search filters the loaded list by username, full name or email.
func (u *Users) Search(ctx context.Context, keyword string) ([]domain.User, error) {
	users, err := u.backend.Users(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return users, nil
	}

	var out []domain.User
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Username), keyword) ||
			strings.Contains(strings.ToLower(user.FullName), keyword) ||
			strings.Contains(strings.ToLower(user.Email), keyword) {
			out = append(out, user)
		}
	}
	return out, nil
}

// Detail fetches one account plus its order stats for the view modal.
func (u *Users) Detail(ctx context.Context, username string) (*domain.User, *domain.OrderStats, error) {
	user, err := u.backend.User(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	stats, err := u.backend.UserOrderStats(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, stats, nil
}

// Update saves an edited account and returns the refreshed list.
func (u *Users) Update(ctx context.Context, id int64, user domain.User) ([]domain.User, error) {
	if _, err := u.backend.AdminUpdateUser(ctx, id, user); err != nil {
		return nil, err
	}
	return u.Load(ctx)
}
