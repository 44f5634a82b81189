package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"slices"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Sentinel errors returned by HTTPFetcher.
var (
	// ErrUnauthorized means the address book server rejected the credentials.
	ErrUnauthorized = errors.New(config.ErrUnauthorized)

	// ErrHTTPStatus covers every other non-200 answer.
	ErrHTTPStatus = errors.New(config.ErrHTTPStatus)

	// ErrContentType means the server answered with something that cannot
	// be a vCard stream, typically an HTML login page.
	ErrContentType = errors.New(config.ErrContentType)
)

// Fetcher retrieves a remote vCard stream for import.
// This interface allows for mocking in tests and decoupling from the network layer.
type Fetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher implements Fetcher using the standard net/http library.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a new instance of HTTPFetcher with configured timeouts.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch downloads the address book export at targetURL.
// It sanitizes the URL for logging purposes to avoid leaking sensitive tokens,
// asks for vCard content, rejects answers that cannot hold vCards and
// enforces a maximum response size.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	// Parse the URL to validate it and sanitize it for logs.
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}

	// Security check: ensure strictly HTTP or HTTPS.
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query parameters might contain tokens.
	safeURL := u.Scheme + "://" + u.Host + u.Path

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug(config.MsgFetchStart)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRequest, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.AcceptVCard)

	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrNetwork, err)
	}

	if err := checkResponse(resp); err != nil {
		_ = resp.Body.Close() // Ensure we don't leak resources on error.
		log.Warn(config.MsgFetchRejected,
			slog.Int(config.LogKeyStatus, resp.StatusCode),
			slog.String(config.LogKeyContentType, resp.Header.Get(config.HeaderContentType)),
			slog.Any(config.LogKeyError, err),
		)
		return nil, err
	}

	log.Info(config.MsgFetchDownloading,
		slog.Int64(config.LogKeySizeBytes, resp.ContentLength),
	)

	// Limit the bytes read to protect against large payloads.
	return &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, config.MaxHTTPResponseSize),
		Closer: resp.Body,
	}, nil
}

// checkResponse accepts a 200 whose media type can carry vCards. A missing
// Content-Type is accepted, since many servers omit it for static files.
func checkResponse(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status)
	}

	ct := resp.Header.Get(config.HeaderContentType)
	if ct == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !slices.Contains(config.VCardMediaTypes, mediaType) {
		return fmt.Errorf("%w: %q", ErrContentType, ct)
	}
	return nil
}

// limitedReadCloser pairs a size-limited reader with the original body closer,
// so the connection is closed properly while the read size stays bounded.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}
