package serverless

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"fluentedge/internal/payment/razorpay"
	"fluentedge/internal/payment/razorpay/orders"
	httpUtil "fluentedge/internal/utility/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// Handler adapts API Gateway proxy events to the order service.
type Handler struct {
	orders      *orders.Service
	credentials razorpay.Credentials
}

func NewHandler(svc *orders.Service, creds razorpay.Credentials) *Handler {
	return &Handler{orders: svc, credentials: creds}
}

// Handle never returns an error; every failure is encoded in the response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := log.With().Str("request_id", req.RequestContext.RequestID).Logger()
	ctx = logger.WithContext(ctx)

	switch req.HTTPMethod {
	case http.MethodOptions:
		return respond(http.StatusOK, ""), nil
	case http.MethodPost:
	default:
		return respond(http.StatusMethodNotAllowed, httpUtil.ErrorBody("Method not allowed")), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return h.fail(ctx, fmt.Errorf("%w: decoding base64 body: %v", orders.ErrUnexpected, err)), nil
		}
		body = decoded
	}

	result, err := h.orders.CreateFromJSON(ctx, h.credentials, body)
	if err != nil {
		return h.fail(ctx, err), nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return h.fail(ctx, fmt.Errorf("%w: encoding result: %v", orders.ErrUnexpected, err)), nil
	}
	return respond(http.StatusOK, string(encoded)), nil
}

func (h *Handler) fail(ctx context.Context, err error) events.APIGatewayProxyResponse {
	code := orders.GetErrorStatusCode(err)
	message := orders.PublicMessage(err)
	zerolog.Ctx(ctx).Error().Err(err).Int("status", code).Msg(message)
	return respond(code, httpUtil.ErrorBody(message))
}

func respond(code int, body string) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(corsHeaders)+1)
	for k, v := range corsHeaders {
		headers[k] = v
	}
	if body != "" {
		headers["Content-Type"] = "application/json"
	}
	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    headers,
		Body:       body,
	}
}
