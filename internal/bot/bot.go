package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"todolist/internal/core"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Keyboard labels. These are the texts the Telegram client sends back when a
// button is pressed, so they double as commands.
const (
	btnLogin      = "Войти"
	btnRegister   = "Зарегистрироваться"
	btnNotes      = "📝 Мои заметки"
	btnAddNote    = "➕ Добавить заметку"
	btnEditNote   = "🖊 Редактировать заметку"
	btnDeleteNote = "➖ Удалить заметку"
	btnLogout     = "🔐 Выйти"
)

const (
	msgWelcome        = "Добро пожаловать в To-Do бота! Выберите действие:"
	msgMainMenu       = "Главное меню:"
	msgAskUsername    = "Введите ваш логин:"
	msgAskPassword    = "Введите ваш пароль:"
	msgLoggedIn       = "Вы успешно вошли!"
	msgBadCredentials = "Неверный логин или пароль"
	msgLoginError     = "Произошла ошибка при входе"
	msgAskNewUsername = "Придумайте логин:"
	msgAskNewPassword = "Придумайте пароль:"
	msgRegistered     = "Регистрация успешна!"
	msgUsernameTaken  = "Такой логин уже существует"
	msgRegisterError  = "Ошибка при регистрации"
	msgNeedLogin      = "Пожалуйста, войдите в систему"
	msgLoggedOut      = "Вы вышли из системы"
	msgNotesHeader    = "📋 Ваши заметки:\n\n"
	msgNoNotes        = "У вас пока нет заметок"
	msgNotesError     = "Ошибка при получении заметок"
	msgAskNoteText    = "Введите текст заметки:"
	msgNoteAdded      = "✅ Заметка успешно добавлена!"
	msgNoteAddError   = "❌ Ошибка при добавлении заметки"
	msgAskNoteID      = "Введите номер заметки:"
	msgAskNewText     = "Введите новый текст заметки:"
	msgNoteUpdated    = "🖊 Заметка обновлена!"
	msgNoteDeleted    = "➖ Заметка удалена"
	msgNoteNotFound   = "Заметка не найдена"
	msgBadNoteID      = "Некорректный номер заметки"
	msgNoteError      = "Произошла ошибка, попробуйте ещё раз"
)

// step is the position of a chat inside a multi-message flow. The Telegram
// client sends one message at a time, so login, registration and the item
// flows are driven by a per-chat state machine.
type step int

const (
	stepIdle step = iota
	stepLoginUsername
	stepLoginPassword
	stepRegisterUsername
	stepRegisterPassword
	stepNoteText
	stepEditID
	stepEditText
	stepDeleteID
)

type conversation struct {
	step     step
	username string
	itemID   uint
}

// Bot is the Telegram client of the todo service. It talks to the same
// business layer as the HTTP surface but keeps its own sessions, keyed by
// chat id instead of an opaque token: a Telegram chat is already an
// authenticated channel to one account holder.
type Bot struct {
	logs *zap.SugaredLogger
	api  MessageSender
	todo TodoService

	mu            sync.Mutex
	sessions      map[int64]uint
	conversations map[int64]conversation
}

func NewBot(logger *zap.SugaredLogger, api MessageSender, todoService TodoService) *Bot {
	return &Bot{
		logs:          logger,
		api:           api,
		todo:          todoService,
		sessions:      make(map[int64]uint),
		conversations: make(map[int64]conversation),
	}
}

// Run consumes updates until the context is cancelled or the channel closes.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single incoming update. Non-text updates are
// ignored.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if text == "/start" {
		b.setConversation(chatID, conversation{})
		b.sendWithKeyboard(chatID, msgWelcome, b.welcomeKeyboard())
		return
	}

	if conv := b.getConversation(chatID); conv.step != stepIdle {
		b.continueConversation(ctx, chatID, text, conv)
		return
	}

	switch text {
	case btnLogin:
		b.setConversation(chatID, conversation{step: stepLoginUsername})
		b.send(chatID, msgAskUsername)
	case btnRegister:
		b.setConversation(chatID, conversation{step: stepRegisterUsername})
		b.send(chatID, msgAskNewUsername)
	case btnNotes:
		b.showNotes(ctx, chatID)
	case btnAddNote:
		if _, ok := b.session(chatID); !ok {
			b.send(chatID, msgNeedLogin)
			return
		}
		b.setConversation(chatID, conversation{step: stepNoteText})
		b.send(chatID, msgAskNoteText)
	case btnEditNote:
		if _, ok := b.session(chatID); !ok {
			b.send(chatID, msgNeedLogin)
			return
		}
		b.setConversation(chatID, conversation{step: stepEditID})
		b.send(chatID, msgAskNoteID)
	case btnDeleteNote:
		if _, ok := b.session(chatID); !ok {
			b.send(chatID, msgNeedLogin)
			return
		}
		b.setConversation(chatID, conversation{step: stepDeleteID})
		b.send(chatID, msgAskNoteID)
	case btnLogout:
		b.mu.Lock()
		delete(b.sessions, chatID)
		b.mu.Unlock()
		b.send(chatID, msgLoggedOut)
		b.sendWithKeyboard(chatID, msgWelcome, b.welcomeKeyboard())
	}
}

func (b *Bot) continueConversation(ctx context.Context, chatID int64, text string, conv conversation) {
	switch conv.step {
	case stepLoginUsername:
		b.setConversation(chatID, conversation{step: stepLoginPassword, username: text})
		b.send(chatID, msgAskPassword)

	case stepLoginPassword:
		b.setConversation(chatID, conversation{})
		b.finishLogin(ctx, chatID, conv.username, text)

	case stepRegisterUsername:
		b.setConversation(chatID, conversation{step: stepRegisterPassword, username: text})
		b.send(chatID, msgAskNewPassword)

	case stepRegisterPassword:
		b.setConversation(chatID, conversation{})
		b.finishRegister(ctx, chatID, conv.username, text)

	case stepNoteText:
		b.setConversation(chatID, conversation{})
		b.finishAddNote(ctx, chatID, text)

	case stepEditID:
		itemID, ok := b.parseNoteID(chatID, text)
		if !ok {
			b.setConversation(chatID, conversation{})
			return
		}
		b.setConversation(chatID, conversation{step: stepEditText, itemID: itemID})
		b.send(chatID, msgAskNewText)

	case stepEditText:
		b.setConversation(chatID, conversation{})
		b.finishEditNote(ctx, chatID, conv.itemID, text)

	case stepDeleteID:
		b.setConversation(chatID, conversation{})
		itemID, ok := b.parseNoteID(chatID, text)
		if !ok {
			return
		}
		b.finishDeleteNote(ctx, chatID, itemID)
	}
}

func (b *Bot) finishLogin(ctx context.Context, chatID int64, username, password string) {
	account, err := b.todo.VerifyCredentials(ctx, core.CredentialsMessage{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) || errors.Is(err, core.ErrInvalidInput) {
			b.send(chatID, msgBadCredentials)
			return
		}
		b.send(chatID, msgLoginError)
		b.logs.Errorw("bot login failed", "error", err, "chat_id", chatID)
		return
	}

	b.mu.Lock()
	b.sessions[chatID] = account.ID
	b.mu.Unlock()

	b.send(chatID, msgLoggedIn)
	b.sendWithKeyboard(chatID, msgMainMenu, b.mainMenuKeyboard())
}

// finishRegister logs the chat in right away: unlike the web client, the bot
// flow has no separate sign-in step after registration.
func (b *Bot) finishRegister(ctx context.Context, chatID int64, username, password string) {
	userID, err := b.todo.Register(ctx, core.CredentialsMessage{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUsername) {
			b.send(chatID, msgUsernameTaken)
			return
		}
		b.send(chatID, msgRegisterError)
		b.logs.Errorw("bot registration failed", "error", err, "chat_id", chatID)
		return
	}

	b.mu.Lock()
	b.sessions[chatID] = userID
	b.mu.Unlock()

	b.send(chatID, msgRegistered)
	b.sendWithKeyboard(chatID, msgMainMenu, b.mainMenuKeyboard())
}

func (b *Bot) showNotes(ctx context.Context, chatID int64) {
	userID, ok := b.session(chatID)
	if !ok {
		b.send(chatID, msgNeedLogin)
		return
	}

	items, err := b.todo.ListItems(ctx, userID)
	if err != nil {
		b.send(chatID, msgNotesError)
		b.logs.Errorw("bot failed to list items", "error", err, "chat_id", chatID)
		return
	}

	if len(items) == 0 {
		b.send(chatID, msgNoNotes)
		return
	}

	var sb strings.Builder
	sb.WriteString(msgNotesHeader)
	for _, item := range items {
		fmt.Fprintf(&sb, "%d.\t%s\n\n", item.ID, item.Text)
	}
	b.send(chatID, sb.String())
}

func (b *Bot) finishAddNote(ctx context.Context, chatID int64, text string) {
	userID, ok := b.session(chatID)
	if !ok {
		b.send(chatID, msgNeedLogin)
		return
	}

	if _, err := b.todo.CreateItem(ctx, userID, text); err != nil {
		b.send(chatID, msgNoteAddError)
		b.logs.Errorw("bot failed to create item", "error", err, "chat_id", chatID)
		return
	}

	b.send(chatID, msgNoteAdded)
}

func (b *Bot) finishEditNote(ctx context.Context, chatID int64, itemID uint, text string) {
	userID, ok := b.session(chatID)
	if !ok {
		b.send(chatID, msgNeedLogin)
		return
	}

	if err := b.todo.UpdateItem(ctx, userID, itemID, text); err != nil {
		if errors.Is(err, core.ErrItemNotFound) {
			b.send(chatID, msgNoteNotFound)
			return
		}
		b.send(chatID, msgNoteError)
		b.logs.Errorw("bot failed to update item", "error", err, "chat_id", chatID)
		return
	}

	b.send(chatID, msgNoteUpdated)
}

func (b *Bot) finishDeleteNote(ctx context.Context, chatID int64, itemID uint) {
	userID, ok := b.session(chatID)
	if !ok {
		b.send(chatID, msgNeedLogin)
		return
	}

	if err := b.todo.DeleteItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, core.ErrItemNotFound) {
			b.send(chatID, msgNoteNotFound)
			return
		}
		b.send(chatID, msgNoteError)
		b.logs.Errorw("bot failed to delete item", "error", err, "chat_id", chatID)
		return
	}

	b.send(chatID, msgNoteDeleted)
}

func (b *Bot) parseNoteID(chatID int64, text string) (uint, bool) {
	itemID, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		b.send(chatID, msgBadNoteID)
		return 0, false
	}
	return uint(itemID), true
}

func (b *Bot) session(chatID int64) (uint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	userID, ok := b.sessions[chatID]
	return userID, ok
}

func (b *Bot) getConversation(chatID int64) conversation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[chatID]
}

func (b *Bot) setConversation(chatID int64, conv conversation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if conv == (conversation{}) {
		delete(b.conversations, chatID)
		return
	}
	b.conversations[chatID] = conv
}

func (b *Bot) welcomeKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnLogin),
			tgbotapi.NewKeyboardButton(btnRegister),
		),
	)
}

func (b *Bot) mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNotes),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddNote),
			tgbotapi.NewKeyboardButton(btnEditNote),
			tgbotapi.NewKeyboardButton(btnDeleteNote),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnLogout),
		),
	)
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logs.Errorw("failed to send telegram message", "error", err, "chat_id", chatID)
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.logs.Errorw("failed to send telegram message", "error", err, "chat_id", chatID)
	}
}
