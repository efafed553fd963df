package bot

import (
	"context"
	"todolist/internal/core"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MessageSender . MessageSender
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Register(ctx context.Context, msg core.CredentialsMessage) (uint, error)
	VerifyCredentials(ctx context.Context, msg core.CredentialsMessage) (core.AccountRecord, error)
	CreateItem(ctx context.Context, userID uint, text string) (uint, error)
	ListItems(ctx context.Context, userID uint) ([]core.ItemRecord, error)
	UpdateItem(ctx context.Context, userID, itemID uint, text string) error
	DeleteItem(ctx context.Context, userID, itemID uint) error
}
