package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Client-visible error strings. These are a compatibility contract with
// existing clients; do not reword them.
const (
	msgCredentialsRequired = "Username and password are required"
	msgCredentialsStrings  = "Username and password must be strings"
	msgUsernameTaken       = "Username already exists"
	msgInvalidCredentials  = "Invalid username or password"
	msgUnauthorized        = "Unauthorized"
	msgTextRequired        = "Text is required and must be a string"
	msgInvalidItemID       = "Invalid item ID"
	msgItemNotFound        = "Item not found"
	msgRegistrationFailed  = "Registration failed"
	msgLoginFailed         = "Login failed"
	msgGetItemsFailed      = "Failed to get items"
	msgCreateItemFailed    = "Failed to create item"
	msgUpdateItemFailed    = "Failed to update item"
	msgDeleteItemFailed    = "Failed to delete item"
)

type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type RegisterResponse struct {
	Success  bool   `json:"success"`
	UserID   uint   `json:"userId"`
	Redirect string `json:"redirect"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Success  bool     `json:"success"`
	User     UserInfo `json:"user"`
	Redirect string   `json:"redirect"`
}

type ItemView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type ItemsResponse struct {
	Success bool       `json:"success"`
	Items   []ItemView `json:"items"`
}

type CreateItemResponse struct {
	Success bool `json:"success"`
	ItemID  uint `json:"itemId"`
}
