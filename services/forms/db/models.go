package db

type Form struct {
	ID           string
	DocumentName string
	DocDesc      string
	Questions    string
	CreatedAt    int64
}

type Response struct {
	ID        string
	UserName  string
	FormID    string
	Answers   string
	CreatedAt int64
	UpdatedAt int64
}
