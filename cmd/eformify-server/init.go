package main

import (
	"database/sql"
	"eformify-backend/lib/scrapers/quiz"
	"eformify-backend/lib/serviceutil"
	"eformify-backend/services/auth"
	authdb "eformify-backend/services/auth/db"
	"eformify-backend/services/forms"
	formsdb "eformify-backend/services/forms/db"
	"eformify-backend/services/scrape"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// every service shares one database
var Schema = authdb.Schema + "\n" + formsdb.Schema

func InitAuth(mux *http.ServeMux, database *sql.DB, cfg AuthConfig) auth.Service {
	service := auth.NewService(database, auth.Options{
		TokenTTL: time.Duration(cfg.TokenTTLHours) * time.Hour,
		Smtp:     auth.SmtpConfig(cfg.Smtp),
	})
	service.RegisterRoutes(mux)
	return service
}

func InitForms(mux *http.ServeMux, database *sql.DB, cfg FormsConfig) forms.Service {
	service := forms.NewService(database, forms.Options{
		FilesDir: cfg.FilesDir,
	})
	service.RegisterRoutes(mux)
	return service
}

func InitScrape(mux *http.ServeMux, cfg ScrapeConfig) scrape.Service {
	fetcher := quiz.NewFetcher(quiz.FetcherOptions{
		Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
		UserAgent:        cfg.UserAgent,
		CloudflareBypass: cfg.CloudflareBypass,
	})
	service := scrape.NewService(quiz.NewScraper(fetcher))
	service.RegisterRoutes(mux)
	return service
}

// NewHandler builds the routes of every service behind cors and tracing.
func NewHandler(database *sql.DB, cfg Config) http.Handler {
	mux := http.NewServeMux()
	InitAuth(mux, database, cfg.Auth)
	InitForms(mux, database, cfg.Forms)
	InitScrape(mux, cfg.Scrape)
	return serviceutil.Cors(cfg.Http.AllowedOrigins, otelhttp.NewHandler(mux, "eformify-server"))
}
