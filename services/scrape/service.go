package scrape

import (
	"eformify-backend/lib/scrapers/quiz"
	"eformify-backend/lib/serviceutil"
	"eformify-backend/lib/telemetry"
	"eformify-backend/services/forms"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("eformify.services.scrape")
var meter = telemetry.Meter("eformify.services.scrape")

var requestCounter, _ = meter.Int64Counter("scrape_service.requests")

type Service struct {
	scraper quiz.Scraper
}

func NewService(scraper quiz.Scraper) Service {
	return Service{scraper: scraper}
}

func (s Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/scrape", s.handleScrape)
}

func (s Service) handleScrape(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleScrape")
	defer span.End()

	target := r.URL.Query().Get("url")
	if target == "" {
		requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "bad_request")))
		serviceutil.WriteError(w, http.StatusBadRequest, "URL parameter is required.")
		return
	}
	span.SetAttributes(attribute.String("url", target))

	questions, err := s.scraper.Scrape(ctx, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to scrape")
		slog.ErrorContext(ctx, "failed to scrape", "url", target, "err", err)
		requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		serviceutil.WriteError(w, http.StatusInternalServerError, "An error occurred while scraping the website.")
		return
	}

	requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	serviceutil.WriteJSON(w, http.StatusOK, questions)
}

// ToFormQuestion turns a scraped question into a multiple choice form
// question whose answer key is the scraped answer.
func ToFormQuestion(q quiz.ExtractedQuestion) forms.Question {
	options := make(forms.OptionList, len(q.Options))
	copy(options, q.Options)
	return forms.Question{
		QuestionText: q.QuestionText,
		QuestionType: "radio",
		Options:      options,
		Answer:       q.Answer(),
	}
}

func ToFormQuestions(questions []quiz.ExtractedQuestion) []forms.Question {
	out := make([]forms.Question, len(questions))
	for i, q := range questions {
		out[i] = ToFormQuestion(q)
	}
	return out
}
