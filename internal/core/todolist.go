package core

import (
	"context"
	"errors"
	"fmt"
	"todolist/internal/repository"

	"go.uber.org/zap"
)

var ErrInvalidInput error = errors.New("username and password are required")
var ErrDuplicateUsername error = errors.New("username already exists")
var ErrInvalidCredentials error = errors.New("invalid username or password")
var ErrUnauthorized error = errors.New("unauthorized")
var ErrAccountNotFound error = errors.New("account not found")
var ErrInvalidText error = errors.New("item text is required")
var ErrItemNotFound error = errors.New("item not found")

// Todolist is the business layer: account registration, session based
// authentication and owner-scoped item operations.
type Todolist struct {
	logs     *zap.SugaredLogger
	repo     Repository
	sessions SessionStore
	hasher   PasswordHasher
}

func NewTodolist(logger *zap.SugaredLogger, repo Repository, sessions SessionStore, hasher PasswordHasher) *Todolist {
	return &Todolist{
		logs:     logger,
		repo:     repo,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register creates a new account with a hashed password. The username must
// be unused; duplicates are rejected by the store's unique index.
func (t *Todolist) Register(ctx context.Context, msg CredentialsMessage) (uint, error) {
	if msg.Username == "" || msg.Password == "" {
		return 0, ErrInvalidInput
	}

	passhash, err := t.hasher.Hash(msg.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	accountID, err := t.repo.CreateAccount(ctx, msg.Username, passhash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create account: %w", err)
	}

	t.logs.Infow("account registered", "user_id", accountID, "username", msg.Username)

	return accountID, nil
}

// VerifyCredentials checks a username/password pair against the stored digest
// without opening a session. An unknown username and a wrong password both
// come back as ErrInvalidCredentials. Login composes it with session
// creation; the Telegram bot keeps its own chat-keyed sessions and only needs
// the identity.
func (t *Todolist) VerifyCredentials(ctx context.Context, msg CredentialsMessage) (AccountRecord, error) {
	if msg.Username == "" || msg.Password == "" {
		return AccountRecord{}, ErrInvalidInput
	}

	account, err := t.repo.GetAccountByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return AccountRecord{}, ErrInvalidCredentials
		}
		return AccountRecord{}, fmt.Errorf("get account by username: %w", err)
	}

	if !t.hasher.Verify(msg.Password, account.PassHash) {
		return AccountRecord{}, ErrInvalidCredentials
	}

	return AccountRecord{
		ID:       account.ID,
		Username: account.Username,
	}, nil
}

// Login verifies the credentials and opens a new session.
func (t *Todolist) Login(ctx context.Context, msg CredentialsMessage) (LoginResult, error) {
	account, err := t.VerifyCredentials(ctx, msg)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := t.sessions.Create(account.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	t.logs.Infow("user logged in", "user_id", account.ID, "username", account.Username)

	return LoginResult{
		Token:    token,
		UserID:   account.ID,
		Username: account.Username,
	}, nil
}

// Authenticate resolves a session token to a user id. Session validity alone
// is sufficient; the account repository is never consulted here.
func (t *Todolist) Authenticate(token string) (uint, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}

	userID, ok := t.sessions.Resolve(token)
	if !ok {
		return 0, ErrUnauthorized
	}

	return userID, nil
}

// Logout destroys the session. Always succeeds from the caller's point of
// view, even for tokens that no longer exist.
func (t *Todolist) Logout(token string) {
	t.sessions.Destroy(token)
}

func (t *Todolist) AccountInfo(ctx context.Context, userID uint) (AccountRecord, error) {
	account, err := t.repo.GetAccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return AccountRecord{}, ErrAccountNotFound
		}
		return AccountRecord{}, fmt.Errorf("get account by id: %w", err)
	}

	return AccountRecord{
		ID:       account.ID,
		Username: account.Username,
	}, nil
}

func (t *Todolist) CreateItem(ctx context.Context, userID uint, text string) (uint, error) {
	if text == "" {
		return 0, ErrInvalidText
	}

	itemID, err := t.repo.CreateItem(ctx, userID, text)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	t.logs.Infow("item created", "user_id", userID, "item_id", itemID)

	return itemID, nil
}

func (t *Todolist) ListItems(ctx context.Context, userID uint) ([]ItemRecord, error) {
	items, err := t.repo.GetItemsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get items by owner: %w", err)
	}

	records := make([]ItemRecord, len(items))
	for i, item := range items {
		records[i] = ItemRecord{
			ID:   item.ID,
			Text: item.Text,
		}
	}

	return records, nil
}

// UpdateItem replaces the item text. ErrItemNotFound covers both a missing
// item and an item owned by another user, so callers cannot tell whether
// another user's item exists.
func (t *Todolist) UpdateItem(ctx context.Context, userID, itemID uint, text string) error {
	if text == "" {
		return ErrInvalidText
	}

	updated, err := t.repo.UpdateItemText(ctx, userID, itemID, text)
	if err != nil {
		return fmt.Errorf("update item text: %w", err)
	}
	if !updated {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem has the same not-found semantics as UpdateItem.
func (t *Todolist) DeleteItem(ctx context.Context, userID, itemID uint) error {
	deleted, err := t.repo.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if !deleted {
		return ErrItemNotFound
	}

	return nil
}
