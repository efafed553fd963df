package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
	"todolist/internal/core"
	"todolist/internal/http/handler/middleware"
	"todolist/internal/http/payload"
	"todolist/internal/http/web"

	"go.uber.org/zap"
)

var (
	GetAuthPage = "GET /{$}"
	GetListPage = "GET /index.html"
	Register    = "POST /register"
	Login       = "POST /login"
	Logout      = "POST /logout"
	GetItems    = "GET /api/items"
	CreateItem  = "POST /api/items"
	UpdateItem  = "PUT /api/items/{id}"
	DeleteItem  = "DELETE /api/items/{id}"
)

const (
	sessionCookieName   = "sessionId"
	sessionCookieMaxAge = 60 * 60 * 24 * 7
	listPagePath        = "/index.html"
	authPagePath        = "/"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	todo             TodoService
	pages            PageRenderer
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, todoService TodoService, pages PageRenderer) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		todo:             todoService,
		pages:            pages,
	}
}

func (h *TodoHandler) HandleAuthPage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var page bytes.Buffer
	if err := h.pages.RenderAuthPage(&page); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render auth page",
			"error", err,
			"handler", GetAuthPage,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.Bytes())
}

func (h *TodoHandler) HandleListPage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, err := h.todo.Authenticate(sessionToken(r))
	if err != nil {
		http.Redirect(w, r, authPagePath, http.StatusFound)
		return
	}

	account, err := h.todo.AccountInfo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			http.Redirect(w, r, authPagePath, http.StatusFound)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to load account for list page",
			"error", err,
			"handler", GetListPage,
			"request_id", requestId)
		return
	}

	items, err := h.todo.ListItems(r.Context(), userID)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to load items for list page",
			"error", err,
			"handler", GetListPage,
			"request_id", requestId)
		return
	}

	data := web.ListPageData{
		Username: account.Username,
		Items:    make([]web.ListItem, len(items)),
	}
	for i, item := range items {
		data.Items[i] = web.ListItem{ID: item.ID, Text: item.Text}
	}

	var page bytes.Buffer
	if err := h.pages.RenderListPage(&page, data); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render list page",
			"error", err,
			"handler", GetListPage,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.Bytes())
}

func (h *TodoHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var creds payload.CredentialsRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &creds); err != nil {
		h.respond(w, Response{
			Error: credentialsErrorMessage(err),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	userID, err := h.todo.Register(r.Context(), creds.ToMessage())
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			httpCode = http.StatusBadRequest
			resp.Error = msgCredentialsRequired
		case errors.Is(err, core.ErrDuplicateUsername):
			httpCode = http.StatusConflict
			resp.Error = msgUsernameTaken
		default:
			resp.Error = msgRegistrationFailed
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	w.Header().Set("Location", listPagePath)
	h.respond(w, RegisterResponse{
		Success:  true,
		UserID:   userID,
		Redirect: listPagePath,
	}, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var creds payload.CredentialsRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &creds); err != nil {
		h.respond(w, Response{
			Error: credentialsErrorMessage(err),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	result, err := h.todo.Login(r.Context(), creds.ToMessage())
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			httpCode = http.StatusBadRequest
			resp.Error = msgCredentialsRequired
		case errors.Is(err, core.ErrInvalidCredentials):
			httpCode = http.StatusUnauthorized
			resp.Error = msgInvalidCredentials
		default:
			resp.Error = msgLoginFailed
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   sessionCookieMaxAge,
	})
	w.Header().Set("Location", listPagePath)
	h.respond(w, LoginResponse{
		Success: true,
		User: UserInfo{
			ID:       result.UserID,
			Username: result.Username,
		},
		Redirect: listPagePath,
	}, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if token := sessionToken(r); token != "" {
		h.todo.Logout(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	h.respond(w, Response{Success: true}, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleGetItems(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, requestId)
	if !ok {
		return
	}

	items, err := h.todo.ListItems(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Error: msgGetItemsFailed,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get items",
			"error", err,
			"handler", GetItems,
			"request_id", requestId)
		return
	}

	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{ID: item.ID, Text: item.Text}
	}

	h.respond(w, ItemsResponse{
		Success: true,
		Items:   views,
	}, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, requestId)
	if !ok {
		return
	}

	var item payload.ItemRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &item); err != nil {
		h.respond(w, Response{
			Error: msgTextRequired,
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateItem,
			"request_id", requestId)
		return
	}

	itemID, err := h.todo.CreateItem(r.Context(), userID, item.Text)
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidText) {
			httpCode = http.StatusBadRequest
			resp.Error = msgTextRequired
		} else {
			resp.Error = msgCreateItemFailed
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to create item",
			"error", err,
			"handler", CreateItem,
			"request_id", requestId)
		return
	}

	h.respond(w, CreateItemResponse{
		Success: true,
		ItemID:  itemID,
	}, http.StatusCreated, requestId)
}

func (h *TodoHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, requestId)
	if !ok {
		return
	}

	itemID, ok := h.itemID(w, r, requestId)
	if !ok {
		return
	}

	var item payload.ItemRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &item); err != nil {
		h.respond(w, Response{
			Error: msgTextRequired,
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateItem,
			"request_id", requestId)
		return
	}

	err := h.todo.UpdateItem(r.Context(), userID, itemID, item.Text)
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidText):
			httpCode = http.StatusBadRequest
			resp.Error = msgTextRequired
		case errors.Is(err, core.ErrItemNotFound):
			httpCode = http.StatusNotFound
			resp.Error = msgItemNotFound
		default:
			resp.Error = msgUpdateItemFailed
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update item",
			"error", err,
			"handler", UpdateItem,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Success: true}, http.StatusOK, requestId)
}

func (h *TodoHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, requestId)
	if !ok {
		return
	}

	itemID, ok := h.itemID(w, r, requestId)
	if !ok {
		return
	}

	err := h.todo.DeleteItem(r.Context(), userID, itemID)
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrItemNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = msgItemNotFound
		} else {
			resp.Error = msgDeleteItemFailed
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete item",
			"error", err,
			"handler", DeleteItem,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Success: true}, http.StatusOK, requestId)
}

// authenticate resolves the session cookie to a user id, writing the 401
// contract response when the request carries no valid session.
func (h *TodoHandler) authenticate(w http.ResponseWriter, r *http.Request, requestId string) (uint, bool) {
	userID, err := h.todo.Authenticate(sessionToken(r))
	if err != nil {
		h.respond(w, Response{
			Error: msgUnauthorized,
		}, http.StatusUnauthorized, requestId)
		return 0, false
	}
	return userID, true
}

func (h *TodoHandler) itemID(w http.ResponseWriter, r *http.Request, requestId string) (uint, bool) {
	itemID, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		h.respond(w, Response{
			Error: msgInvalidItemID,
		}, http.StatusBadRequest, requestId)
		return 0, false
	}
	return uint(itemID), true
}

func (h *TodoHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// credentialsErrorMessage picks the contract message for a failed decode:
// wrong-typed fields get their own wording, everything else reads as missing
// fields.
func credentialsErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return msgCredentialsStrings
	}
	return msgCredentialsRequired
}
