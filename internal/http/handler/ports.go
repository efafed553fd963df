package handler

import (
	"context"
	"io"
	"net/http"
	"todolist/internal/core"
	"todolist/internal/http/web"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Register(ctx context.Context, msg core.CredentialsMessage) (uint, error)
	Login(ctx context.Context, msg core.CredentialsMessage) (core.LoginResult, error)
	Logout(token string)
	Authenticate(token string) (uint, error)
	AccountInfo(ctx context.Context, userID uint) (core.AccountRecord, error)
	CreateItem(ctx context.Context, userID uint, text string) (uint, error)
	ListItems(ctx context.Context, userID uint) ([]core.ItemRecord, error)
	UpdateItem(ctx context.Context, userID, itemID uint, text string) error
	DeleteItem(ctx context.Context, userID, itemID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name PageRenderer . PageRenderer
type PageRenderer interface {
	RenderAuthPage(w io.Writer) error
	RenderListPage(w io.Writer, data web.ListPageData) error
}
