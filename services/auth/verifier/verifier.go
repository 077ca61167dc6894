package verifier

import (
	"context"
	"database/sql"
	"eformify-backend/lib/serviceutil"
	"eformify-backend/lib/telemetry"
	"eformify-backend/lib/timezone"
	"eformify-backend/services/auth/db"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("eformify.services.auth.verifier")
var meter = telemetry.Meter("eformify.services.auth.verifier")

var uniqueLoginCounter, _ = meter.Int64Counter("auth_service.unique_login_counter")

type loginTracker struct {
	mutex sync.Mutex
	day   time.Time
	seen  map[string]struct{}
}

var logins = loginTracker{seen: map[string]struct{}{}}

// countLogin increments the unique login counter the first time a user is
// seen on a given day.
func countLogin(ctx context.Context, userId string) {
	logins.mutex.Lock()
	defer logins.mutex.Unlock()

	now := timezone.Now()
	if !timezone.SameDay(now, logins.day) {
		logins.day = now
		logins.seen = map[string]struct{}{}
	}
	_, alreadyLoggedIn := logins.seen[userId]
	if alreadyLoggedIn {
		return
	}
	uniqueLoginCounter.Add(ctx, 1)
	logins.seen[userId] = struct{}{}
}

// TokenCookie is the cookie the session token is stored in.
const TokenCookie = "jwtoken"

type Verifier struct {
	qry *db.Queries
}

func NewVerifier(database *sql.DB) Verifier {
	return Verifier{qry: db.New(database)}
}

var InvalidToken = errors.New("invalid token")

func (v Verifier) VerifyToken(ctx context.Context, token string) (db.User, error) {
	ctx, span := tracer.Start(ctx, "VerifyToken")
	defer span.End()

	if token == "" {
		span.SetStatus(codes.Error, "no token")
		return db.User{}, InvalidToken
	}

	user, err := v.qry.GetUserFromToken(ctx, db.GetUserFromTokenParams{
		Token: token,
		Now:   time.Now().Unix(),
	})
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "invalid token")
		return db.User{}, InvalidToken
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "got unexpected error while reading token")
		return db.User{}, err
	}

	countLogin(ctx, user.ID)

	return user, nil
}

// TokenFromRequest returns the session token from the cookie or, failing
// that, from an "Authorization: Bearer" header.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if ok {
		return strings.TrimSpace(token)
	}
	return ""
}

type userKey struct{}

func UserFromContext(ctx context.Context) (db.User, bool) {
	user, ok := ctx.Value(userKey{}).(db.User)
	return user, ok
}

func ContextWithUser(ctx context.Context, user db.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// Authenticate rejects requests without a valid session token with a 401,
// otherwise the token's user is available through UserFromContext.
func (v Verifier) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, err := v.VerifyToken(ctx, TokenFromRequest(r))
		if err != nil {
			if !errors.Is(err, InvalidToken) {
				slog.ErrorContext(ctx, "failed to verify token", "err", err)
			}
			serviceutil.WriteText(w, http.StatusUnauthorized, "Unauthorized:No token provided")
			return
		}
		next(w, r.WithContext(ContextWithUser(ctx, user)))
	}
}
