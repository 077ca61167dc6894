package quiz

import (
	"context"
	"eformify-backend/lib/restyutil"
	"fmt"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
const DefaultTimeout = 10 * time.Second

type FetcherOptions struct {
	// defaults to DefaultTimeout
	Timeout time.Duration
	// defaults to DefaultUserAgent
	UserAgent string
	// routes requests through a transport that mimics a browser's tls and
	// header fingerprint
	CloudflareBypass bool
}

type Fetcher struct {
	client *resty.Client
}

func NewFetcher(opts FetcherOptions) Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return Fetcher{client: client}
}

func validateTarget(target string) error {
	link, err := url.Parse(target)
	if err != nil {
		return err
	}
	if link.Scheme != "http" && link.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", link.Scheme)
	}
	if link.Host == "" {
		return fmt.Errorf("url has no host")
	}
	return nil
}

// Fetch makes a single GET request to `target` and returns the body. It does
// not retry.
func (f Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", target))

	err := validateTarget(target)
	if err != nil {
		span.SetStatus(codes.Error, "invalid url")
		return "", &FetchError{URL: target, Err: err}
	}

	res, err := f.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", &FetchError{URL: target, Err: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		span.SetStatus(codes.Error, "unexpected status")
		return "", &FetchError{URL: target, Status: res.StatusCode()}
	}

	return res.String(), nil
}
