package auth

import (
	"context"
	"database/sql"
	"eformify-backend/lib/telemetry"
	"eformify-backend/services/auth/db"
	"eformify-backend/services/auth/verifier"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

var tracer = telemetry.Tracer("eformify.services.auth")

// DefaultTokenTTL is how long a session stays valid after login.
const DefaultTokenTTL = 25892000000 * time.Millisecond

const tokenLength = 48

type SmtpConfig struct {
	Server       string
	Port         int
	EmailAddress string
	Password     string
	// contact messages are forwarded here, defaults to EmailAddress
	NotifyAddress string
}

type Options struct {
	TokenTTL   time.Duration
	BcryptCost int
	// contact notifications are only sent when Smtp.Server is set
	Smtp SmtpConfig
}

type Service struct {
	db       *sql.DB
	qry      *db.Queries
	verifier verifier.Verifier
	config   Options
}

func NewService(database *sql.DB, options Options) Service {
	if options.TokenTTL <= 0 {
		options.TokenTTL = DefaultTokenTTL
	}
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	return Service{
		db:       database,
		qry:      db.New(database),
		verifier: verifier.NewVerifier(database),
		config:   options,
	}
}

func (s Service) Verifier() verifier.Verifier {
	return s.verifier
}

var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrEmailExists        = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func normalizeEmail(email string) string {
	return strings.Trim(strings.ToLower(email), " \t\n")
}

func anyEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	CPassword string `json:"cpassword"`
}

func (s Service) Register(ctx context.Context, req RegisterRequest) error {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	if anyEmpty(req.Name, req.Email, req.Phone, req.Password, req.CPassword) {
		return ErrMissingFields
	}
	email := normalizeEmail(req.Email)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	_, err = txqry.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to look up user")
		return err
	}
	if req.Password != req.CPassword {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to hash password")
		return err
	}
	err = txqry.CreateUser(ctx, db.CreateUserParams{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create user")
		return err
	}

	return tx.Commit()
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}

func (s Service) createToken(ctx context.Context, txqry *db.Queries, userId string) (Session, error) {
	ctx, span := tracer.Start(ctx, "createToken")
	defer span.End()

	token, err := random.String(tokenLength)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to generate token")
		return Session{}, err
	}

	now := time.Now()
	err = txqry.DeleteExpiredTokens(ctx, now.Unix())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to delete expired tokens")
		return Session{}, err
	}

	expiresAt := now.Add(s.config.TokenTTL)
	err = txqry.CreateToken(ctx, db.CreateTokenParams{
		Token:     token,
		UserID:    userId,
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert token")
		return Session{}, err
	}

	return Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Login checks the credentials and starts a new session.
func (s Service) Login(ctx context.Context, email, password string) (Session, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	if anyEmpty(email, password) {
		return Session{}, ErrMissingFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Session{}, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	user, err := txqry.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "unknown email")
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to look up user")
		return Session{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		span.SetStatus(codes.Error, "wrong password")
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to compare password")
		return Session{}, err
	}

	session, err := s.createToken(ctx, txqry, user.ID)
	if err != nil {
		return Session{}, err
	}
	err = tx.Commit()
	if err != nil {
		return Session{}, err
	}
	return session, nil
}

// Logout invalidates the token, an empty or unknown token is not an error.
func (s Service) Logout(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "Logout")
	defer span.End()

	if token == "" {
		return nil
	}
	err := s.qry.DeleteToken(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to delete token")
		return err
	}
	return nil
}

type ContactMessage struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is a user as shown to themselves, it never includes the password
// hash.
type Profile struct {
	ID        string           `json:"_id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Messages  []ContactMessage `json:"messages"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (s Service) Profile(ctx context.Context, user db.User) (Profile, error) {
	ctx, span := tracer.Start(ctx, "Profile")
	defer span.End()

	rows, err := s.qry.GetUserMessages(ctx, user.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read messages")
		return Profile{}, err
	}

	messages := make([]ContactMessage, len(rows))
	for i, m := range rows {
		messages[i] = ContactMessage{
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Message:   m.Message,
			CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
		}
	}

	return Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Messages:  messages,
		CreatedAt: time.Unix(user.CreatedAt, 0).UTC(),
	}, nil
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SubmitContact stores the message on the user and, when smtp is configured,
// forwards it by email. A failed notification does not fail the submission.
func (s Service) SubmitContact(ctx context.Context, user db.User, req ContactRequest) error {
	ctx, span := tracer.Start(ctx, "SubmitContact")
	defer span.End()

	if anyEmpty(req.Name, req.Email, req.Phone, req.Message) {
		return ErrMissingFields
	}

	err := s.qry.CreateMessage(ctx, db.CreateMessageParams{
		UserID:    user.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert message")
		return err
	}

	if s.config.Smtp.Server != "" {
		err = s.sendContactNotification(ctx, req)
		if err != nil {
			slog.WarnContext(ctx, "failed to send contact notification", "user", user.ID, "err", err)
		}
	}
	return nil
}

func (s Service) sendContactNotification(ctx context.Context, req ContactRequest) error {
	_, span := tracer.Start(ctx, "sendContactNotification")
	defer span.End()

	to := s.config.Smtp.NotifyAddress
	if to == "" {
		to = s.config.Smtp.EmailAddress
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("eFormify <%s>", s.config.Smtp.EmailAddress)
	mail.To = []string{to}
	mail.ReplyTo = []string{req.Email}
	mail.Subject = fmt.Sprintf("Contact message from %s", req.Name)
	mail.Text = []byte(fmt.Sprintf(`Name: %s
Email: %s
Phone: %s

%s`, req.Name, req.Email, req.Phone, req.Message))

	addr := fmt.Sprintf("%s:%d", s.config.Smtp.Server, s.config.Smtp.Port)
	err := mail.Send(addr, smtp.PlainAuth("", s.config.Smtp.EmailAddress, s.config.Smtp.Password, s.config.Smtp.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}
