package controller

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-bot-be/internal/dto"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubPaymentService struct {
	notifications int
	notifyErr     error
}

func (s *stubPaymentService) GetPlans(ctx context.Context) []*dto.PlanResponse { return nil }

func (s *stubPaymentService) CreateCheckoutLink(ctx context.Context, userID, planID string) (string, error) {
	return "", nil
}

func (s *stubPaymentService) CreatePortalLink(ctx context.Context, userID string) (string, error) {
	return "", nil
}

func (s *stubPaymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	s.notifications++
	return s.notifyErr
}

func (s *stubPaymentService) ApplySubscriptionChange(ctx context.Context, userID, planID string, active bool) error {
	return nil
}

func newPaymentApp(svc *stubPaymentService) *fiber.App {
	app := fiber.New()
	NewPaymentController(svc, noopLogger{}).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPaymentWebhookRejectsIncompleteBody(t *testing.T) {
	svc := &stubPaymentService{}
	app := newPaymentApp(svc)

	// Parses fine but misses the signature fields.
	status := postJSON(t, app, "/payment/midtrans/notification",
		`{"transaction_status":"settlement","order_id":"standard--U1"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, svc.notifications)
}

func TestPaymentWebhookAcceptsCompleteBody(t *testing.T) {
	svc := &stubPaymentService{}
	app := newPaymentApp(svc)

	status := postJSON(t, app, "/payment/midtrans/notification",
		`{"transaction_status":"settlement","order_id":"standard--U1","signature_key":"sig","status_code":"200","gross_amount":"980.00"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, svc.notifications)
}

func TestPaymentWebhookServiceFailureTriggersRetry(t *testing.T) {
	svc := &stubPaymentService{notifyErr: errors.New("db down")}
	app := newPaymentApp(svc)

	status := postJSON(t, app, "/payment/midtrans/notification",
		`{"transaction_status":"settlement","order_id":"standard--U1","signature_key":"sig","status_code":"200","gross_amount":"980.00"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
}
