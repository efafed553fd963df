package core

import (
	"context"
	"todolist/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateAccount(ctx context.Context, username, passhash string) (uint, error)
	GetAccountByUsername(ctx context.Context, username string) (repository.Account, error)
	GetAccountByID(ctx context.Context, id uint) (repository.Account, error)
	CreateItem(ctx context.Context, ownerID uint, text string) (uint, error)
	GetItemsByOwner(ctx context.Context, ownerID uint) ([]repository.Item, error)
	UpdateItemText(ctx context.Context, ownerID, itemID uint, text string) (bool, error)
	DeleteItem(ctx context.Context, ownerID, itemID uint) (bool, error)
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Create(userID uint) (string, error)
	Resolve(token string) (uint, bool)
	Destroy(token string)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
