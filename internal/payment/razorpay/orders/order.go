package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fluentedge/internal/metrics"
	"fluentedge/internal/payment/razorpay"
	httpClient "fluentedge/internal/utility/http"

	"github.com/go-playground/validator"
	"github.com/rs/zerolog"
)

var validate = validator.New()

// Service creates Razorpay orders. It holds no per-call state, so one value
// serves concurrent requests from every transport.
type Service struct {
	client   *httpClient.Client
	endpoint string
	now      func() time.Time
	metrics  *metrics.Orders
}

type Option func(*Service)

// WithBaseURL points the service at another Razorpay-compatible host.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.endpoint = razorpay.GetOrdersEndPoint(baseURL)
	}
}

func WithHTTPClient(client *httpClient.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithMetrics(m *metrics.Orders) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		client:   httpClient.NewHttpClient(),
		endpoint: razorpay.GetOrdersEndPoint(""),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFromJSON decodes an inbound body and creates the order.
func (s *Service) CreateFromJSON(ctx context.Context, creds razorpay.Credentials, body []byte) (OrderResult, error) {
	req, err := ParseOrderRequest(body)
	if err != nil {
		s.metrics.Observe(outcome(err))
		return OrderResult{}, err
	}
	return s.Create(ctx, creds, req)
}

// Create validates req and, when creds are configured, creates one
// auto-capture order upstream. Every call creates a new order.
func (s *Service) Create(ctx context.Context, creds razorpay.Credentials, req OrderRequest) (result OrderResult, err error) {
	defer func() {
		s.metrics.Observe(outcome(err))
	}()

	logger := zerolog.Ctx(ctx)

	if err := validate.Struct(req); err != nil {
		return OrderResult{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	if !creds.Configured() {
		logger.Error().Msg("Missing Razorpay credentials")
		return OrderResult{}, ErrNotConfigured
	}

	payload := buildOrderPayload(req, s.now())
	body, err := json.Marshal(payload)
	if err != nil {
		return OrderResult{}, fmt.Errorf("%w: encoding order: %v", ErrUnexpected, err)
	}

	start := time.Now()
	resp, err := s.client.Post(ctx, s.endpoint, bytes.NewReader(body),
		httpClient.WithHeader("Authorization", creds.BasicAuth()))
	s.metrics.ObserveUpstream(time.Since(start))
	if err != nil {
		return OrderResult{}, fmt.Errorf("%w: calling razorpay: %v", ErrUnexpected, err)
	}

	if !resp.OK() {
		logger.Error().
			Int("upstream_status", resp.StatusCode).
			Str("upstream_body", string(resp.Body)).
			Msg("Razorpay API Error")
		return OrderResult{}, &UpstreamError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var order providerOrderResponse
	if err := json.Unmarshal(resp.Body, &order); err != nil {
		return OrderResult{}, fmt.Errorf("%w: decoding razorpay order: %v", ErrUnexpected, err)
	}

	logger.Info().
		Str("order_id", order.ID).
		Str("receipt", payload.Receipt).
		Int64("amount", order.Amount).
		Str("currency", order.Currency).
		Str("status", order.Status).
		Msg("Razorpay order created")

	return order.result(), nil
}
