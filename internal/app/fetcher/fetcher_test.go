package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
)

const testAgent = "Mozilla/5.0 (test)"

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestFetchPage_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	f := New(Options{UserAgent: testAgent})
	data, err := f.FetchPage(context.Background(), server.URL)

	assert.NoError(t, err)
	assert.Equal(t, "payload", data)
	assert.Equal(t, testAgent, gotAgent)
}

func TestFetchPage_StatusErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		maxRetries    int
		expectedCalls int32
	}{
		{name: "NotFoundIsNotRetried", status: http.StatusNotFound, maxRetries: 2, expectedCalls: 1},
		{name: "ServerErrorIsRetried", status: http.StatusServiceUnavailable, maxRetries: 2, expectedCalls: 3},
		{name: "TooManyRequestsIsRetried", status: http.StatusTooManyRequests, maxRetries: 1, expectedCalls: 2},
		{name: "NoRetriesByDefault", status: http.StatusInternalServerError, maxRetries: 0, expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			f := New(Options{MaxRetries: tt.maxRetries, RetryBackoff: time.Millisecond})
			data, err := f.FetchPage(context.Background(), server.URL)

			assert.Empty(t, data)
			assert.ErrorIs(t, err, errs.ErrFetch)
			assert.Equal(t, tt.expectedCalls, calls.Load())
		})
	}
}

func TestFetchPage_RetrySucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	f := New(Options{MaxRetries: 3, RetryBackoff: time.Millisecond})
	data, err := f.FetchPage(context.Background(), server.URL)

	assert.NoError(t, err)
	assert.Equal(t, "ok", data)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPage_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f := New(Options{})
	_, err := f.FetchPage(context.Background(), url)

	assert.ErrorIs(t, err, errs.ErrFetch)
}

func TestFetchPage_CancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := New(Options{MaxRetries: 5, RetryBackoff: time.Second})
	_, err := f.FetchPage(ctx, server.URL)

	assert.ErrorIs(t, err, errs.ErrFetch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchPage_SizeLimit(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		expectError bool
	}{
		{name: "AtLimit", size: 64, expectError: false},
		{name: "OverLimit", size: 65, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(strings.Repeat("a", tt.size)))
			}))
			defer server.Close()

			f := New(Options{MaxPageSize: 64})
			markup, err := f.FetchPage(context.Background(), server.URL)

			if tt.expectError {
				assert.ErrorIs(t, err, errs.ErrFetch)
				assert.Empty(t, markup)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, markup, tt.size)
		})
	}
}

func TestFetchPage_Charsets(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        []byte
		expected    string
		wantErr     bool
	}{
		{
			name:        "Utf8",
			contentType: "text/html; charset=utf-8",
			body:        []byte(`<img src="café.jpg">`),
			expected:    `<img src="café.jpg">`,
		},
		{
			name:        "Latin1Header",
			contentType: "text/html; charset=iso-8859-1",
			body:        []byte("<p>caf\xe9</p>"),
			expected:    "<p>café</p>",
		},
		{
			name:        "MetaCharset",
			contentType: "text/html",
			body:        []byte(`<html><head><meta charset="windows-1252"></head><body>caf` + "\xe9" + `</body></html>`),
			expected:    `<html><head><meta charset="windows-1252"></head><body>café</body></html>`,
		},
		{
			name:        "UnknownCharset",
			contentType: "text/html; charset=no-such-charset",
			body:        []byte("<p>x</p>"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Write(tt.body)
			}))
			defer server.Close()

			markup, err := New(Options{}).FetchPage(context.Background(), server.URL)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrFetch)
				assert.Empty(t, markup)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, markup)
		})
	}
}

func TestOpen_UpgradesToHTTPS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secure"))
	}))
	defer server.Close()

	plain := "http://" + strings.TrimPrefix(server.URL, "https://")
	f := New(Options{UpgradeHTTPS: true, Client: server.Client()})

	body, err := f.Open(context.Background(), plain)
	assert.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "secure", string(data))
}

func TestBackoffFor(t *testing.T) {
	f := New(Options{RetryBackoff: 100 * time.Millisecond})

	assert.Equal(t, 100*time.Millisecond, f.backoffFor(1))
	assert.Equal(t, 200*time.Millisecond, f.backoffFor(2))
	assert.Equal(t, 400*time.Millisecond, f.backoffFor(3))
	assert.Equal(t, maxBackoff, f.backoffFor(20))
}
