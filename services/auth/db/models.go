package db

type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    int64
}

type Token struct {
	Token     string
	UserID    string
	ExpiresAt int64
}

type Message struct {
	ID        int64
	UserID    string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt int64
}
