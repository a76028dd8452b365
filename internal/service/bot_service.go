package service

import (
	"context"
	"fmt"
	"strings"

	"gourmet-bot-be/internal/constant"
	"gourmet-bot-be/internal/dto"
	"gourmet-bot-be/internal/mapper"
	"gourmet-bot-be/internal/pkg/logger"
	"gourmet-bot-be/internal/pkg/userlock"
	"gourmet-bot-be/internal/repository/contract"
	"gourmet-bot-be/internal/repository/specification"
	"gourmet-bot-be/pkg/events"
	"gourmet-bot-be/pkg/extract"
	"gourmet-bot-be/pkg/intent"
	"gourmet-bot-be/pkg/line"
	pkgNats "gourmet-bot-be/pkg/nats"
	"gourmet-bot-be/pkg/quota"
	"gourmet-bot-be/pkg/recommend"
	"gourmet-bot-be/pkg/store"
)

type IBotService interface {
	HandleEvent(ctx context.Context, event dto.LineEvent) error
}

type botService struct {
	lineClient     *line.Client
	ledger         *quota.Ledger
	catalog        *quota.Catalog
	extractor      *extract.Extractor
	pipeline       *recommend.Pipeline
	sessions       store.Repository
	payments       IPaymentService
	users          contract.UserRepository
	eventPublisher *pkgNats.Publisher
	locks          *userlock.Keyed
	flexMapper     *mapper.ShopFlexMapper
	log            logger.ILogger
}

func NewBotService(
	lineClient *line.Client,
	ledger *quota.Ledger,
	catalog *quota.Catalog,
	extractor *extract.Extractor,
	pipeline *recommend.Pipeline,
	sessions store.Repository,
	payments IPaymentService,
	users contract.UserRepository,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IBotService {
	return &botService{
		lineClient:     lineClient,
		ledger:         ledger,
		catalog:        catalog,
		extractor:      extractor,
		pipeline:       pipeline,
		sessions:       sessions,
		payments:       payments,
		users:          users,
		eventPublisher: eventPublisher,
		locks:          userlock.New(),
		flexMapper:     mapper.NewShopFlexMapper(),
		log:            log,
	}
}

// HandleEvent processes one webhook event end to end. All work for
// the same user is serialized so the quota check-then-increment and
// session mutations stay consistent under concurrent delivery.
func (s *botService) HandleEvent(ctx context.Context, event dto.LineEvent) error {
	if !event.IsTextMessage() {
		return nil
	}

	userID := event.Source.UserID
	text := strings.TrimSpace(event.Message.Text)
	if userID == "" || text == "" {
		return nil
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	session, hasSession := s.sessions.Get(userID)
	resolved := intent.Classify(text, hasSession)

	s.log.Info("BotService", "handling message", map[string]interface{}{
		"user_id": userID,
		"intent":  string(resolved),
	})

	var err error
	switch resolved {
	case intent.Cancel:
		err = s.handleCancel(ctx, event, userID)
	case intent.SelectPlan:
		err = s.handleSelectPlan(ctx, event, userID, text)
	case intent.ChangePlan:
		err = s.handleChangePlan(ctx, event)
	default:
		err = s.handleRecommendation(ctx, event, userID, text, resolved, session)
	}

	if err != nil {
		s.log.Error("BotService", "turn failed", map[string]interface{}{
			"user_id": userID,
			"intent":  string(resolved),
			"error":   err.Error(),
		})
		// The reply token is single use, so this is the one shot at
		// telling the user something went wrong.
		if replyErr := s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgTurnFailed)); replyErr != nil {
			s.log.Warn("BotService", "failed to send error reply", map[string]interface{}{
				"user_id": userID,
				"error":   replyErr.Error(),
			})
		}
	}
	return err
}

// handleRecommendation is the quota-gated content path shared by new
// searches, refinements and next-candidate turns.
func (s *botService) handleRecommendation(ctx context.Context, event dto.LineEvent, userID, text string, resolved intent.Intent, session *store.Session) error {
	decision, err := s.ledger.CheckAndConsume(ctx, userID)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return s.replyUpsell(ctx, event.ReplyToken, decision.Options)
	}

	// Mask the multi-call model chain with an early notice.
	if err := s.lineClient.Push(ctx, userID, line.NewTextMessage(constant.MsgSearching)); err != nil {
		s.log.Warn("BotService", "failed to push searching notice", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	var result recommend.Result
	switch resolved {
	case intent.Refine:
		delta, exErr := s.extractor.Extract(ctx, text)
		if exErr != nil {
			return exErr
		}
		result, err = s.pipeline.Refine(ctx, session, text, delta)
	case intent.NextCandidate:
		result, err = s.pipeline.NextCandidate(ctx, session)
	default:
		filter, exErr := s.extractor.Extract(ctx, text)
		if exErr != nil {
			return exErr
		}
		result, err = s.pipeline.NewSearch(ctx, userID, text, filter)
	}
	if err != nil {
		return err
	}

	switch result.Outcome {
	case recommend.OutcomeNoMatch:
		return s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgNoMatch))
	case recommend.OutcomeNoSelection:
		return s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgNoCloseMatch))
	case recommend.OutcomeExhausted:
		return s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgExhausted))
	}

	carousel := s.flexMapper.ToCarousel(altText(resolved), result.Shops)
	followUp := line.NewTextMessage(constant.MsgAskNext)
	followUp.QuickReply = line.NewMessageQuickReply(
		map[string]string{constant.QuickReplyNextLabel: constant.QuickReplyNextText},
		[]string{constant.QuickReplyNextLabel},
	)
	if err := s.lineClient.Reply(ctx, event.ReplyToken, carousel, followUp); err != nil {
		return err
	}

	names := make([]string, 0, len(result.Shops))
	for _, shop := range result.Shops {
		names = append(names, shop.Name)
	}
	if err := s.eventPublisher.Publish(ctx, events.NewRecommendationServed(userID, names, string(resolved))); err != nil {
		s.log.Warn("BotService", "failed to publish recommendation event", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return nil
}

func (s *botService) handleCancel(ctx context.Context, event dto.LineEvent, userID string) error {
	user, err := s.users.FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return err
	}
	if user == nil || (!user.Subscribed && user.CustomerRef == "") {
		return s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgNothingToCancel))
	}

	url, err := s.payments.CreatePortalLink(ctx, userID)
	if err != nil {
		return err
	}
	return s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgPortalLead+url))
}

func (s *botService) handleSelectPlan(ctx context.Context, event dto.LineEvent, userID, text string) error {
	var selected *quota.Plan
	for _, p := range s.catalog.Plans() {
		if strings.Contains(text, p.Label) {
			plan := p
			selected = &plan
			break
		}
	}
	if selected == nil {
		return s.handleChangePlan(ctx, event)
	}

	url, err := s.payments.CreateCheckoutLink(ctx, userID, selected.ID)
	if err != nil {
		return err
	}
	return s.lineClient.Reply(ctx, event.ReplyToken, line.NewTextMessage(constant.MsgCheckoutLead+url))
}

func (s *botService) handleChangePlan(ctx context.Context, event dto.LineEvent) error {
	return s.lineClient.Reply(ctx, event.ReplyToken, s.planChoiceMessage(constant.MsgPlanOverview, s.catalog.Plans()))
}

func (s *botService) replyUpsell(ctx context.Context, replyToken string, options []quota.Plan) error {
	return s.lineClient.Reply(ctx, replyToken, s.planChoiceMessage(constant.MsgQuotaExceeded, options))
}

// planChoiceMessage renders a plan list with quick-reply buttons whose
// texts are the plan labels, which the intent router then resolves as
// SelectPlan.
func (s *botService) planChoiceMessage(lead string, plans []quota.Plan) line.TextMessage {
	var b strings.Builder
	b.WriteString(lead)
	labels := make([]string, 0, len(plans))
	texts := make(map[string]string, len(plans))
	for _, p := range plans {
		b.WriteString(fmt.Sprintf("\n・%s（月額%d円）", p.Label, p.Price))
		labels = append(labels, p.Label)
		texts[p.Label] = p.Label
	}
	msg := line.NewTextMessage(b.String())
	msg.QuickReply = line.NewMessageQuickReply(texts, labels)
	return msg
}

func altText(resolved intent.Intent) string {
	switch resolved {
	case intent.Refine:
		return constant.AltTextRefine
	case intent.NextCandidate:
		return constant.AltTextNext
	default:
		return constant.AltTextNewSearch
	}
}
