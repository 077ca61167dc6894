package auth

import (
	"eformify-backend/lib/serviceutil"
	"eformify-backend/services/auth/verifier"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

type messageBody struct {
	Message string `json:"message"`
}

func (s Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /about", s.verifier.Authenticate(s.handleAbout))
	mux.HandleFunc("POST /contact", s.verifier.Authenticate(s.handleContact))
	mux.HandleFunc("GET /logout", s.handleLogout)
}

func (s Service) handleIndex(w http.ResponseWriter, r *http.Request) {
	serviceutil.WriteText(w, http.StatusOK, "Hello World!!")
}

func (s Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	err := serviceutil.ReadJSON(r, &req)
	if err != nil {
		serviceutil.WriteError(w, http.StatusUnprocessableEntity, "Fill all the required fields")
		return
	}

	err = s.Register(ctx, req)
	switch {
	case err == nil:
		serviceutil.WriteJSON(w, http.StatusCreated, messageBody{Message: "User registered successfully"})
	case errors.Is(err, ErrMissingFields):
		serviceutil.WriteError(w, http.StatusUnprocessableEntity, "Fill all the required fields")
	case errors.Is(err, ErrEmailExists):
		serviceutil.WriteError(w, http.StatusUnprocessableEntity, "Email already exists")
	case errors.Is(err, ErrPasswordMismatch):
		serviceutil.WriteError(w, http.StatusUnprocessableEntity, "Passwords do not match")
	default:
		slog.ErrorContext(ctx, "failed to register", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "Failed to register")
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	err := serviceutil.ReadJSON(r, &req)
	if err != nil {
		serviceutil.WriteError(w, http.StatusUnprocessableEntity, "Fill all the required fields")
		return
	}

	session, err := s.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		serviceutil.WriteError(w, http.StatusUnprocessableEntity, "Fill all the required fields")
		return
	case errors.Is(err, ErrInvalidCredentials):
		serviceutil.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		return
	case err != nil:
		slog.ErrorContext(ctx, "failed to login", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     verifier.TokenCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})
	serviceutil.WriteJSON(w, http.StatusOK, messageBody{Message: "User signed in successfully"})
}

func (s Service) handleAbout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := verifier.UserFromContext(ctx)

	profile, err := s.Profile(ctx, user)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read profile", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "Failed to read profile")
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, profile)
}

func (s Service) handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := verifier.UserFromContext(ctx)

	var req ContactRequest
	err := serviceutil.ReadJSON(r, &req)
	if err == nil {
		err = s.SubmitContact(ctx, user, req)
	} else {
		err = ErrMissingFields
	}
	switch {
	case err == nil:
		serviceutil.WriteJSON(w, http.StatusCreated, messageBody{Message: "Contact Message Submitted"})
	case errors.Is(err, ErrMissingFields):
		slog.WarnContext(ctx, "contact form not filled", "user", user.ID)
		serviceutil.WriteError(w, http.StatusOK, "Form not filled")
	default:
		slog.ErrorContext(ctx, "failed to submit contact message", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "Failed to submit contact message")
	}
}

func (s Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.Logout(ctx, verifier.TokenFromRequest(r))
	if err != nil {
		slog.WarnContext(ctx, "failed to delete token on logout", "err", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     verifier.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	slog.InfoContext(ctx, "user logged out")
	serviceutil.WriteText(w, http.StatusOK, "User logged out")
}
