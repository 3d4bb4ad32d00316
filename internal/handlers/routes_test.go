package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"fluentedge/internal/metrics"
	"fluentedge/internal/models"
	"fluentedge/internal/payment/razorpay"
	"fluentedge/internal/payment/razorpay/orders"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

const orderPath = "/api/create-razorpay-order"

type RouterTestSuite struct {
	suite.Suite
	provider      *httptest.Server
	providerCalls int64
	providerReply string
	providerCode  int
	lastOutbound  map[string]interface{}
	mu            sync.Mutex
}

func (s *RouterTestSuite) SetupTest() {
	atomic.StoreInt64(&s.providerCalls, 0)
	s.providerCode = http.StatusOK
	s.providerReply = `{"id":"order_1","entity":"order","amount":49900,"currency":"INR","status":"created"}`
	s.provider = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.providerCalls, 1)
		var decoded map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&decoded)
		s.mu.Lock()
		s.lastOutbound = decoded
		s.mu.Unlock()
		w.WriteHeader(s.providerCode)
		_, _ = w.Write([]byte(s.providerReply))
	}))
}

func (s *RouterTestSuite) TearDownTest() {
	s.provider.Close()
}

func (s *RouterTestSuite) router(creds razorpay.Credentials) (http.Handler, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	svc := orders.NewService(orders.WithBaseURL(s.provider.URL), orders.WithMetrics(metrics.NewOrders(reg)))
	return NewRouter(Dependencies{
		Payments: NewPaymentHandler(svc, creds),
		Checkout: models.DefaultCheckoutSettings(),
		Metrics:  metrics.Handler(reg),
	}), reg
}

func (s *RouterTestSuite) configured() http.Handler {
	h, _ := s.router(razorpay.Credentials{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret"})
	return h
}

func serve(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) Test_CreateOrder() {
	type TestCase struct {
		Name           string
		Body           string
		ExpectedStatus int
		ExpectedBody   string
		ExpectedCalls  int64
	}

	testCases := []TestCase{
		{
			Name:           "Valid booking fee",
			Body:           `{"amount":49900,"currency":"INR"}`,
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   `{"success":true,"order_id":"order_1","amount":49900,"currency":"INR"}`,
			ExpectedCalls:  1,
		},
		{
			Name:           "Amount below minimum",
			Body:           `{"amount":50}`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   `{"error":"Invalid amount. Minimum is 100 paise (₹1)"}`,
		},
		{
			Name:           "Missing amount",
			Body:           `{"currency":"INR"}`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   `{"error":"Invalid amount. Minimum is 100 paise (₹1)"}`,
		},
		{
			Name:           "Malformed body",
			Body:           `amount=49900`,
			ExpectedStatus: http.StatusInternalServerError,
			ExpectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			atomic.StoreInt64(&s.providerCalls, 0)

			rec := serve(s.configured(), http.MethodPost, orderPath, tc.Body, map[string]string{"Content-Type": "application/json"})

			s.Equal(tc.ExpectedStatus, rec.Code)
			s.JSONEq(tc.ExpectedBody, rec.Body.String())
			s.Equal("application/json", rec.Header().Get("Content-Type"))
			s.Equal(tc.ExpectedCalls, atomic.LoadInt64(&s.providerCalls))
		})
	}
}

func (s *RouterTestSuite) Test_CreateOrder_NotConfigured() {
	h, _ := s.router(razorpay.Credentials{KeyID: "rzp_test_key"})

	rec := serve(h, http.MethodPost, orderPath, `{"amount":49900}`, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"Payment system not configured"}`, rec.Body.String())
	s.Zero(atomic.LoadInt64(&s.providerCalls))
}

func (s *RouterTestSuite) Test_CreateOrder_UpstreamFailure() {
	s.providerCode = http.StatusUnauthorized
	s.providerReply = `{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`

	rec := serve(s.configured(), http.MethodPost, orderPath, `{"amount":49900}`, nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"Failed to create order"}`, rec.Body.String())
	s.NotContains(rec.Body.String(), "Authentication")
	s.EqualValues(1, atomic.LoadInt64(&s.providerCalls))
}

func (s *RouterTestSuite) Test_CreateOrder_CaptureFlagFixed() {
	rec := serve(s.configured(), http.MethodPost, orderPath, `{"amount":49900,"payment_capture":0,"receipt":"abc"}`, nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Equal(float64(1), s.lastOutbound["payment_capture"])
	s.Equal("abc", s.lastOutbound["receipt"])
}

func (s *RouterTestSuite) Test_Preflight() {
	h := s.configured()

	rec := serve(h, http.MethodOptions, orderPath, "", map[string]string{
		"Origin":                        "https://fluentedgelab.in",
		"Access-Control-Request-Method": "POST",
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
	s.NotEmpty(rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(h, http.MethodOptions, orderPath, "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
	s.Zero(atomic.LoadInt64(&s.providerCalls))
}

func (s *RouterTestSuite) Test_CorsOnActualRequest() {
	rec := serve(s.configured(), http.MethodPost, orderPath, `{"amount":49900}`, map[string]string{
		"Origin": "https://any.example",
	})

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *RouterTestSuite) Test_WrongMethod() {
	rec := serve(s.configured(), http.MethodGet, orderPath, "", nil)

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Zero(atomic.LoadInt64(&s.providerCalls))
}

func (s *RouterTestSuite) Test_CheckoutConfig() {
	rec := serve(s.configured(), http.MethodGet, "/api/checkout-config", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "rzp_test_secret")

	var got models.CheckoutConfig
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("rzp_test_key", got.KeyID)
	s.Equal("https://checkout.razorpay.com/v1/checkout.js", got.ScriptURL)
	s.Equal(int64(49900), got.Amount)
	s.Equal("₹499", got.DisplayPrice)
	s.Equal("https://cal.com/fluentedge-lab-6gdbwa/60min", got.BookingLink)
}

func (s *RouterTestSuite) Test_HealthAndMetrics() {
	h := s.configured()
	serve(h, http.MethodPost, orderPath, `{"amount":10}`, nil)

	s.Equal(http.StatusOK, serve(h, http.MethodGet, "/healthz", "", nil).Code)

	rec := serve(h, http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `razorpay_orders_total{outcome="invalid_amount"} 1`)
}

func (s *RouterTestSuite) Test_ConcurrentCallsAreIndependent() {
	srv := httptest.NewServer(s.configured())
	defer srv.Close()

	const n = 20
	var wg sync.WaitGroup
	statuses := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := http.Post(srv.URL+orderPath, "application/json", strings.NewReader(`{"amount":49900}`))
			if err != nil {
				return
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for _, status := range statuses {
		s.Equal(http.StatusOK, status)
	}
	s.EqualValues(n, atomic.LoadInt64(&s.providerCalls))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
