package verifier

import (
	"context"
	"eformify-backend/services/auth/db"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/about", nil)
	require.Equal(t, "", TokenFromRequest(req))

	req.Header.Set("Authorization", "Bearer abc")
	require.Equal(t, "abc", TokenFromRequest(req))

	req.Header.Set("Authorization", "Basic abc")
	require.Equal(t, "", TokenFromRequest(req))

	req = httptest.NewRequest("GET", "/about", nil)
	req.Header.Set("Cookie", TokenCookie+"=from-cookie")
	req.Header.Set("Authorization", "Bearer from-header")
	require.Equal(t, "from-cookie", TokenFromRequest(req))
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	require.False(t, ok)

	ctx := ContextWithUser(context.Background(), db.User{ID: "1", Email: "bob@email.com"})
	user, ok := UserFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "bob@email.com", user.Email)
}

func TestCountLoginResetsDaily(t *testing.T) {
	ctx := context.Background()

	countLogin(ctx, "a")
	countLogin(ctx, "a")
	countLogin(ctx, "b")
	require.Len(t, logins.seen, 2)

	logins.mutex.Lock()
	logins.day = logins.day.Add(-48 * time.Hour)
	logins.mutex.Unlock()

	countLogin(ctx, "a")
	require.Len(t, logins.seen, 1)
}
