package repository

import (
	"context"
	"errors"
	"fmt"
	"todolist/internal/db"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrDuplicateUsername error = errors.New("username already exists")

type TodoRepository struct {
	db Storage
}

func NewTodoRepository(db Storage) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Migrate() error {
	err := r.db.MigrateTable(&Account{}, &Item{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SeedDemoData loads a couple of demo accounts with a few items each. The
// digests are the legacy sha256 format; plaintexts are password123 and
// letmein. No-op when the tables already hold rows.
func (r *TodoRepository) SeedDemoData(ctx context.Context) error {
	accounts := []Account{
		{
			Username: "alice",
			PassHash: "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f",
		},
		{
			Username: "bob",
			PassHash: "1c8bfe8f801d79745c4631d09fff36c82aa37fc4cce4fc946683d7b336b63032",
		},
	}
	err := r.db.SaveToTable(ctx, &accounts)
	if err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	// accounts table already had rows, so no ids were assigned; seeding
	// items now would attach them to account id 0
	if accounts[0].ID == 0 {
		return nil
	}

	items := []Item{
		{Text: "buy milk", UserID: accounts[0].ID},
		{Text: "walk the dog", UserID: accounts[0].ID},
		{Text: "water the plants", UserID: accounts[1].ID},
	}
	err = r.db.SaveToTable(ctx, &items)
	if err != nil {
		return fmt.Errorf("seed items: %w", err)
	}

	return nil
}

func (r *TodoRepository) CreateAccount(ctx context.Context, username, passhash string) (uint, error) {
	account := Account{
		Username: username,
		PassHash: passhash,
	}

	err := r.db.CreateRecord(ctx, &account)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create account: %w", err)
	}

	return account.ID, nil
}

func (r *TodoRepository) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	var account Account

	err := r.db.GetOneBy(ctx, "username", username, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by username: %w", err)
	}

	return account, nil
}

func (r *TodoRepository) GetAccountByID(ctx context.Context, id uint) (Account, error) {
	var account Account

	err := r.db.GetOneBy(ctx, "id", id, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *TodoRepository) CreateItem(ctx context.Context, ownerID uint, text string) (uint, error) {
	item := Item{
		Text:   text,
		UserID: ownerID,
	}

	err := r.db.CreateRecord(ctx, &item)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	return item.ID, nil
}

func (r *TodoRepository) GetItemsByOwner(ctx context.Context, ownerID uint) ([]Item, error) {
	items := []Item{}

	err := r.db.GetAllBy(ctx, "user_id", ownerID, &items)
	if err != nil {
		return nil, fmt.Errorf("get items by owner: %w", err)
	}

	return items, nil
}

// UpdateItemText replaces the item text only when the row belongs to ownerID.
// The owner condition travels in the same UPDATE statement, so the ownership
// check is atomic with the mutation. A false result means the item does not
// exist or is owned by someone else; the two cases are indistinguishable.
func (r *TodoRepository) UpdateItemText(ctx context.Context, ownerID, itemID uint, text string) (bool, error) {
	affected, err := r.db.UpdateWhere(ctx, &Item{},
		map[string]any{"id": itemID, "user_id": ownerID},
		map[string]any{"text": text})
	if err != nil {
		return false, fmt.Errorf("update item text: %w", err)
	}

	return affected > 0, nil
}

// DeleteItem has the same owner-scoped semantics as UpdateItemText.
func (r *TodoRepository) DeleteItem(ctx context.Context, ownerID, itemID uint) (bool, error) {
	affected, err := r.db.DeleteWhere(ctx, &Item{},
		map[string]any{"id": itemID, "user_id": ownerID})
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}

	return affected > 0, nil
}
