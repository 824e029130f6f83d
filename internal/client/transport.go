package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/ratelimiter"
	"github.com/klauspost/compress/zstd"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
)

const (
	// acceptEncoding lists the encodings the compression transport can decode
	acceptEncoding = "gzip, br, zstd"

	// defaultRatePeriod matches the TVMaze guidance of 20 calls every 10 seconds
	defaultRatePeriod = 10 * time.Second
)

// newTransport builds the outbound chain, outermost first:
// headers -> rate limiter -> decompression -> base (proxy aware) transport.
func newTransport(cfg *config.Config, base http.RoundTripper) http.RoundTripper {
	var rt http.RoundTripper = newCompressionTransport(base)

	if cfg.RateLimit.Requests > 0 {
		period := config.ParseDuration("rate_limit.period", cfg.RateLimit.Period, defaultRatePeriod)
		// Excess calls are rejected, not queued or retried
		limiter := ratelimiter.NewBursty[*http.Response](uint(cfg.RateLimit.Requests), period)
		rt = failsafehttp.NewRoundTripper(rt, limiter)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}
	return &headerTransport{transport: rt, userAgent: userAgent}
}

// headerTransport sets the headers every TVMaze request carries
type headerTransport struct {
	transport http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return t.transport.RoundTrip(req)
}

// decoderFunc wraps a compressed body with a decompressing reader
type decoderFunc func(body io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoderFunc{
	"gzip": func(body io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(body)
	},
	"br": func(body io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(body)), nil
	},
	"zstd": func(body io.Reader) (io.ReadCloser, error) {
		zr, err := zstd.NewReader(body)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	},
}

// compressionTransport advertises gzip, brotli and zstd support and transparently
// decodes the response body according to its Content-Encoding.
type compressionTransport struct {
	transport http.RoundTripper
}

func newCompressionTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &compressionTransport{transport: base}
}

func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// HEAD, 204 and 304 responses carry nothing to decode
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	decode, ok := decoders[outermostEncoding(resp.Header.Get("Content-Encoding"))]
	if !ok {
		return resp, nil
	}

	reader, err := decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}

	resp.Body = &decompressReadCloser{reader: reader, originalBody: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1

	return resp, nil
}

// decompressReadCloser closes both the decompressor and the original body
type decompressReadCloser struct {
	reader       io.ReadCloser
	originalBody io.ReadCloser
}

func (d *decompressReadCloser) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

func (d *decompressReadCloser) Close() error {
	readerErr := d.reader.Close()
	bodyErr := d.originalBody.Close()
	if readerErr != nil {
		return readerErr
	}
	return bodyErr
}

// outermostEncoding returns the last coding of a Content-Encoding list, lowercased.
// Codings are listed in the order they were applied, so the last one is removed first.
func outermostEncoding(header string) string {
	parts := strings.Split(header, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}
