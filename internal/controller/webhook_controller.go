package controller

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"gourmet-bot-be/internal/dto"
	"gourmet-bot-be/internal/pkg/logger"
	"gourmet-bot-be/internal/service"
	"gourmet-bot-be/pkg/line"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
}

type webhookController struct {
	bot           service.IBotService
	channelSecret string
	log           logger.ILogger
}

func NewWebhookController(bot service.IBotService, channelSecret string, log logger.ILogger) IWebhookController {
	return &webhookController{
		bot:           bot,
		channelSecret: channelSecret,
		log:           log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Post("/webhook", c.Webhook)
}

// Webhook accepts a LINE event batch. Events are handled in the
// background and the batch is always acknowledged with 200 once the
// signature checks out; per-event failures must not trigger an
// upstream redelivery storm.
func (c *webhookController) Webhook(ctx *fiber.Ctx) error {
	body := ctx.Body()
	signature := ctx.Get("X-Line-Signature")
	if !line.ValidateSignature(c.channelSecret, signature, body) {
		c.log.Warn("WebhookController", "invalid line signature", nil)
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}

	var req dto.LineWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.log.Warn("WebhookController", "failed to parse webhook body", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	for _, event := range req.Events {
		go c.handleEvent(event)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

// handleEvent isolates one event: a panic or error in one turn never
// affects sibling events from the same batch.
func (c *webhookController) handleEvent(event dto.LineEvent) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("WebhookController", "panic while handling event", map[string]interface{}{
				"user_id": event.Source.UserID,
				"panic":   r,
			})
		}
	}()

	// The request context dies when the batch is acknowledged, so each
	// event runs on its own background context.
	if err := c.bot.HandleEvent(context.Background(), event); err != nil {
		c.log.Error("WebhookController", "event handling failed", map[string]interface{}{
			"user_id": event.Source.UserID,
			"error":   err.Error(),
		})
	}
}
