package controller

import (
	"github.com/gofiber/fiber/v2"

	"gourmet-bot-be/internal/dto"
	"gourmet-bot-be/internal/pkg/logger"
	"gourmet-bot-be/internal/pkg/serverutils"
	"gourmet-bot-be/internal/service"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
	log     logger.ILogger
}

func NewPaymentController(service service.IPaymentService, log logger.ILogger) IPaymentController {
	return &paymentController{service: service, log: log}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Post("/midtrans/notification", c.Webhook)
	h.Get("/plans", c.GetPlans)
}

func (c *paymentController) GetPlans(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success fetching plans", c.service.GetPlans(ctx.Context())))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		c.log.Warn("PaymentController", "webhook body parsing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.SendStatus(fiber.StatusBadRequest)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		c.log.Warn("PaymentController", "webhook body incomplete", map[string]interface{}{
			"order_id": req.OrderId,
			"error":    err.Error(),
		})
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	c.log.Info("PaymentController", "webhook received", map[string]interface{}{
		"order_id": req.OrderId,
		"status":   req.TransactionStatus,
	})

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		c.log.Error("PaymentController", "webhook handling failed", map[string]interface{}{
			"order_id": req.OrderId,
			"error":    err.Error(),
		})
		// 500 makes the provider retry the notification
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
