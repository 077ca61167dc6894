package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type client struct {
	t       testing.TB
	handler http.Handler
}

func (c client) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("content-type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func newClient(t testing.TB) (client, func()) {
	service, cleanup := setup(t, Options{})
	mux := http.NewServeMux()
	service.RegisterRoutes(mux)
	return client{t: t, handler: mux}, cleanup
}

func sessionCookie(t testing.TB, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "jwtoken" {
			return cookie
		}
	}
	t.Fatal("no jwtoken cookie was set")
	return nil
}

func TestIndex(t *testing.T) {
	c, cleanup := newClient(t)
	defer cleanup()

	rec := c.do("GET", "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Hello World!!", rec.Body.String())
}

func TestRegisterHandler(t *testing.T) {
	c, cleanup := newClient(t)
	defer cleanup()

	rec := c.do("POST", "/register", map[string]string{"name": "Bob"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"error":"Fill all the required fields"}`, rec.Body.String())

	mismatch := bob
	mismatch.CPassword = "nope"
	rec = c.do("POST", "/register", mismatch)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"error":"Passwords do not match"}`, rec.Body.String())

	rec = c.do("POST", "/register", bob)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())

	rec = c.do("POST", "/register", bob)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
}

func TestSessionHandlers(t *testing.T) {
	c, cleanup := newClient(t)
	defer cleanup()

	rec := c.do("POST", "/register", bob)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do("POST", "/login", map[string]string{"email": bob.Email})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = c.do("POST", "/login", map[string]string{"email": bob.Email, "password": "wrong"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())

	rec = c.do("POST", "/login", map[string]string{"email": bob.Email, "password": bob.Password})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User signed in successfully"}`, rec.Body.String())
	cookie := sessionCookie(t, rec)
	require.True(t, cookie.HttpOnly)
	require.WithinDuration(t, time.Now().Add(25892000000*time.Millisecond), cookie.Expires, time.Minute)

	rec = c.do("GET", "/about", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unauthorized:No token provided", rec.Body.String())

	rec = c.do("GET", "/about", nil, &http.Cookie{Name: "jwtoken", Value: "forged"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = c.do("GET", "/about", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, strings.ToLower(rec.Body.String()), "password")
	var profile Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, bob.Email, profile.Email)
	require.Empty(t, profile.Messages)

	req := httptest.NewRequest("GET", "/about", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	bearer := httptest.NewRecorder()
	c.handler.ServeHTTP(bearer, req)
	require.Equal(t, http.StatusOK, bearer.Code)

	rec = c.do("POST", "/contact", map[string]string{"name": "Bob"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"error":"Form not filled"}`, rec.Body.String())

	rec = c.do("POST", "/contact", ContactRequest{
		Name:    "Bob",
		Email:   bob.Email,
		Phone:   bob.Phone,
		Message: "the form builder is great",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"Contact Message Submitted"}`, rec.Body.String())

	rec = c.do("GET", "/about", nil, cookie)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Len(t, profile.Messages, 1)

	rec = c.do("GET", "/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "User logged out", rec.Body.String())
	cleared := sessionCookie(t, rec)
	require.Empty(t, cleared.Value)
	require.Less(t, cleared.MaxAge, 0)

	rec = c.do("GET", "/about", nil, cookie)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
