package occupation

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/compasshud/compass/internal/logger"
	"github.com/compasshud/compass/internal/utils"
)

const (
	DefaultAPIURL  = "https://api.bls.gov/publicAPI/v2/timeseries/data/"
	DefaultTimeout = 5 * time.Second

	// DefaultRetryDelay is the pause before the first retry; later ones double it.
	DefaultRetryDelay = time.Second

	userAgent       = "compasshud/compass"
	contentType     = "application/json"
	statusSucceeded = "REQUEST_SUCCEEDED"
	maxLogLength    = 512

	seriesPrefix = "OEUN00000001"
	// annual mean wage data type
	seriesSuffix = "04"
	startYear    = "2023"
	endYear      = "2024"
)

// ErrNoData is returned when the statistics API has no figure for an occupation.
var ErrNoData = errors.New("no occupation data")

// ClientConfig configures the live statistics client.
type ClientConfig struct {
	APIURL string
	// APIKey raises the public daily quota; empty uses the anonymous tier.
	APIKey  string
	Timeout time.Duration
	// RequestsPerMinute limits outgoing calls; zero disables the limit.
	RequestsPerMinute int
	// MaxRetries is the number of extra attempts after a failed request.
	MaxRetries int
	RetryDelay time.Duration
}

// Client queries the national occupational employment statistics.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string

	apiKey     string
	maxRetries int
	retryDelay time.Duration
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[float64]
	logger     *zap.Logger
}

type seriesRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type seriesResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year   string `json:"year"`
				Period string `json:"period"`
				Value  string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// NewClient creates a client guarded by a rate limiter and a circuit breaker.
func NewClient(cfg ClientConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	c := &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		UserAgent:  userAgent,
		APIURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     log,
	}

	c.cb = gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        "occupation-stats",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 3 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// a missing series is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoData)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return c
}

// SeriesID returns the annual mean wage series of an occupation code.
func SeriesID(code string) string {
	return seriesPrefix + strings.ReplaceAll(strings.TrimSpace(code), "-", "") + seriesSuffix
}

// Wage returns the latest annual mean wage of the occupation.
func (c *Client) Wage(ctx context.Context, code string) (float64, error) {
	series := SeriesID(code)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying statistics request",
				zap.String("series", series),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, utils.Backoff(attempt, c.retryDelay)); err != nil {
				return 0, err
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return 0, err
		}

		wage, err := c.cb.Execute(func() (float64, error) {
			return c.fetchWage(ctx, series)
		})
		if err == nil {
			return wage, nil
		}
		if !retryable(ctx, err) {
			return 0, err
		}
		lastErr = err
	}

	return 0, lastErr
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return !errors.Is(err, ErrNoData) &&
		!errors.Is(err, gobreaker.ErrOpenState) &&
		!errors.Is(err, gobreaker.ErrTooManyRequests)
}

func (c *Client) fetchWage(ctx context.Context, series string) (float64, error) {
	payload, err := json.Marshal(seriesRequest{
		SeriesID:        []string{series},
		StartYear:       startYear,
		EndYear:         endYear,
		RegistrationKey: c.apiKey,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	c.setHeaders(req)

	c.logger.Debug("make request", zap.String("url", req.URL.String()), zap.String("series", series))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return 0, err
	}

	c.logger.Debug("got response from statistics api",
		zap.Int("status", resp.StatusCode),
		zap.String("body", logger.TruncateForLog(string(data), maxLogLength)),
	)

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("bad status: %s", resp.Status)
	}

	var response seriesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, fmt.Errorf("decoding statistics response: %w", err)
	}

	if response.Status != statusSucceeded {
		return 0, fmt.Errorf("%w: %s %s", ErrNoData, response.Status, strings.Join(response.Message, "; "))
	}
	if len(response.Results.Series) == 0 || len(response.Results.Series[0].Data) == 0 {
		return 0, fmt.Errorf("%w: series %s is empty", ErrNoData, series)
	}

	value := response.Results.Series[0].Data[0].Value
	wage, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: series %s value %q", ErrNoData, series, value)
	}

	return wage, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", "gzip")
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	return io.ReadAll(reader)
}
