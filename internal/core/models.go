package core

type CredentialsMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token    string
	UserID   uint
	Username string
}

type AccountRecord struct {
	ID       uint
	Username string
}

type ItemRecord struct {
	ID   uint
	Text string
}
