package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"github.com/supchaser/getimgs/internal/utils/validate"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultRetryBackoff = 500 * time.Millisecond
	DefaultMaxPageSize  = 10 << 20

	maxBackoff = 30 * time.Second
)

// Options configures a Fetcher. Zero values fall back to the defaults.
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	UpgradeHTTPS bool
	MaxPageSize  int64
	Client       *http.Client
}

type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxRetries   int
	retryBackoff time.Duration
	upgradeHTTPS bool
	maxPageSize  int64
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

func New(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	backoff := opts.RetryBackoff
	if backoff <= 0 {
		backoff = DefaultRetryBackoff
	}

	maxPageSize := opts.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{
			Transport: newTransport(),
			Timeout:   timeout,
		}
	}

	return &Fetcher{
		client:       client,
		userAgent:    opts.UserAgent,
		maxRetries:   max(opts.MaxRetries, 0),
		retryBackoff: backoff,
		upgradeHTTPS: opts.UpgradeHTTPS,
		maxPageSize:  maxPageSize,
	}
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.code, http.StatusText(e.code))
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError || se.code == http.StatusTooManyRequests
	}

	return true
}

// Open performs a GET and returns the body of a 2xx response. Transient
// failures are retried with exponential backoff up to MaxRetries times.
func (f *Fetcher) Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	const funcName = "Fetcher.Open"

	if f.upgradeHTTPS {
		rawURL = validate.UpgradeScheme(rawURL)
	}

	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			delay := f.backoffFor(attempt)
			logger.Debug("retrying request",
				zap.String("function", funcName),
				zap.String("url", rawURL),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", delay),
			)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s: %w", errs.ErrFetch, rawURL, ctx.Err())
			}
		}

		body, err := f.get(ctx, rawURL)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !isRetriable(err) {
			break
		}
	}

	logger.Warn("request failed",
		zap.String("function", funcName),
		zap.String("url", rawURL),
		zap.Error(lastErr),
	)

	return nil, fmt.Errorf("%w: %s: %w", errs.ErrFetch, rawURL, lastErr)
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, statusError{code: resp.StatusCode}
	}

	return &contentTypedBody{ReadCloser: resp.Body, contentType: resp.Header.Get("Content-Type")}, nil
}

func (f *Fetcher) backoffFor(attempt int) time.Duration {
	delay := f.retryBackoff << (attempt - 1)
	if delay <= 0 || delay > maxBackoff {
		return maxBackoff
	}

	return delay
}

// FetchPage returns the page markup converted to UTF-8.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (string, error) {
	const funcName = "Fetcher.FetchPage"

	body, err := f.Open(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, f.maxPageSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %s: read body: %w", errs.ErrFetch, rawURL, err)
	}
	if int64(len(data)) > f.maxPageSize {
		return "", fmt.Errorf("%w: %s: page exceeds %d bytes", errs.ErrFetch, rawURL, f.maxPageSize)
	}

	contentType := ""
	if typed, ok := body.(*contentTypedBody); ok {
		contentType = typed.contentType
	}

	markup, err := decodeMarkup(data, contentType)
	if err != nil {
		logger.Warn("failed to decode page",
			zap.String("function", funcName),
			zap.String("url", rawURL),
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %s: %w", errs.ErrFetch, rawURL, err)
	}

	logger.Debug("page fetched",
		zap.String("function", funcName),
		zap.String("url", rawURL),
		zap.Int("bytes", len(data)),
	)

	return markup, nil
}

func decodeMarkup(data []byte, contentType string) (string, error) {
	if contentType != "" {
		_, params, err := mime.ParseMediaType(contentType)
		if err == nil {
			if label := strings.TrimSpace(params["charset"]); label != "" {
				if enc, _ := charset.Lookup(label); enc == nil {
					return "", fmt.Errorf("unsupported charset %q", label)
				}
			}
		}
	}

	enc, name, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s body: %w", name, err)
	}

	return string(decoded), nil
}

type contentTypedBody struct {
	io.ReadCloser
	contentType string
}
