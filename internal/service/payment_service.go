package service

import (
	"context"
	"fmt"
	"time"

	"gourmet-bot-be/internal/dto"
	"gourmet-bot-be/internal/entity"
	"gourmet-bot-be/internal/pkg/logger"
	"gourmet-bot-be/internal/repository/contract"
	"gourmet-bot-be/internal/repository/specification"
	"gourmet-bot-be/pkg/events"
	pkgNats "gourmet-bot-be/pkg/nats"
	"gourmet-bot-be/pkg/payment"
	"gourmet-bot-be/pkg/quota"
)

// NotificationVerifier checks a provider webhook signature.
type NotificationVerifier interface {
	VerifyNotificationSignature(orderID, statusCode, grossAmount, signature string) bool
}

type IPaymentService interface {
	GetPlans(ctx context.Context) []*dto.PlanResponse
	CreateCheckoutLink(ctx context.Context, userID, planID string) (string, error)
	CreatePortalLink(ctx context.Context, userID string) (string, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	ApplySubscriptionChange(ctx context.Context, userID, planID string, active bool) error
}

type paymentService struct {
	gateway        payment.Gateway
	verifier       NotificationVerifier
	users          contract.UserRepository
	catalog        *quota.Catalog
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewPaymentService(
	gateway payment.Gateway,
	verifier NotificationVerifier,
	users contract.UserRepository,
	catalog *quota.Catalog,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		gateway:        gateway,
		verifier:       verifier,
		users:          users,
		catalog:        catalog,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *paymentService) GetPlans(ctx context.Context) []*dto.PlanResponse {
	plans := s.catalog.Plans()
	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, &dto.PlanResponse{
			Id:      p.ID,
			Label:   p.Label,
			Price:   p.Price,
			Ceiling: p.Ceiling,
		})
	}
	return res
}

func (s *paymentService) CreateCheckoutLink(ctx context.Context, userID, planID string) (string, error) {
	return s.gateway.CreateCheckoutLink(ctx, userID, planID)
}

func (s *paymentService) CreatePortalLink(ctx context.Context, userID string) (string, error) {
	return s.gateway.CreatePortalLink(ctx, userID)
}

// HandleNotification applies a transaction status notification to the
// user's subscription state. Safe to receive the same notification
// more than once.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if !s.verifier.VerifyNotificationSignature(req.OrderId, req.StatusCode, req.GrossAmount, req.SignatureKey) {
		s.log.Warn("PaymentService", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return fmt.Errorf("invalid signature")
	}

	planID, userID, err := payment.ParseOrderID(req.OrderId)
	if err != nil {
		return err
	}
	if _, ok := s.catalog.ByID(planID); !ok {
		return fmt.Errorf("unknown plan in order id: %s", planID)
	}

	var active bool
	switch req.TransactionStatus {
	case "capture", "settlement":
		active = true
	case "deny", "cancel", "expire":
		active = false
	default:
		// pending and unknown statuses need no action
		return nil
	}

	return s.ApplySubscriptionChange(ctx, userID, planID, active)
}

// ApplySubscriptionChange is the idempotent state transition behind
// both the payment webhook and any manual correction path.
func (s *paymentService) ApplySubscriptionChange(ctx context.Context, userID, planID string, active bool) error {
	user, err := s.users.FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return err
	}
	if user == nil {
		// Paying users normally exist already; tolerate the gap.
		user = &entity.User{
			Id:         userID,
			UsageMonth: time.Now().Format("2006-01"),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
	}

	if user.Subscribed == active && user.PlanRef == planID {
		return nil
	}

	user.Subscribed = active
	user.PlanRef = planID
	user.CustomerRef = userID
	// A plan change starts a fresh usage window; carrying the old
	// counter over could deny the user their newly paid turns.
	user.UsageCount = 0
	user.UsageMonth = time.Now().Format("2006-01")
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	evt := events.NewSubscriptionDeactivated(userID, planID)
	if active {
		evt = events.NewSubscriptionActivated(userID, planID)
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("PaymentService", "failed to publish subscription event", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return nil
}
