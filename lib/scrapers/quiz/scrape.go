package quiz

import (
	"context"
	"eformify-backend/lib/htmlutil"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Scraper struct {
	fetcher    Fetcher
	strategies []Strategy
}

func NewScraper(fetcher Fetcher) Scraper {
	return Scraper{fetcher: fetcher, strategies: Strategies}
}

// Scrape fetches `target` and runs every strategy over it. Only fetching and
// parsing can fail the scrape, the returned error is then a *ScrapeError.
func (s Scraper) Scrape(ctx context.Context, target string) ([]ExtractedQuestion, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	body, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return nil, &ScrapeError{URL: target, Err: err}
	}

	doc, err := htmlutil.Parse(body)
	if err != nil {
		err = &ParseError{URL: target, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page")
		return nil, &ScrapeError{URL: target, Err: err}
	}

	questions := Extract(ctx, doc, s.strategies)
	span.SetAttributes(attribute.Int("questions", len(questions)))
	return questions, nil
}

// Extract runs every strategy over the document in order and concatenates
// their results. A strategy that panics contributes nothing, the others still
// run.
func Extract(ctx context.Context, doc *goquery.Document, strategies []Strategy) []ExtractedQuestion {
	out := []ExtractedQuestion{}
	for _, strategy := range strategies {
		questions, err := runStrategy(doc, strategy)
		if err != nil {
			slog.WarnContext(ctx, "extraction strategy failed", "strategy", strategy.Name, "err", err)
			strategyFailureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("strategy", strategy.Name)))
			continue
		}
		if len(questions) > 0 {
			slog.DebugContext(ctx, "extraction strategy matched", "strategy", strategy.Name, "questions", len(questions))
		}
		extractedCounter.Add(ctx, int64(len(questions)), metric.WithAttributes(attribute.String("strategy", strategy.Name)))
		out = append(out, questions...)
	}
	return out
}

func runStrategy(doc *goquery.Document, strategy Strategy) (questions []ExtractedQuestion, err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		questions = nil
		err = &StrategyError{Strategy: strategy.Name, Err: fmt.Errorf("panic: %v", recovered)}
	}()
	return strategy.Extract(doc), nil
}
