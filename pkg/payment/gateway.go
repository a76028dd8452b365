// Package payment abstracts the billing provider behind a small
// gateway interface so the bot only deals in checkout and portal
// URLs.
package payment

import (
	"context"
	"fmt"
	"strings"
)

// Gateway creates the URLs the bot hands to users for subscribing
// and managing an existing subscription.
type Gateway interface {
	CreateCheckoutLink(ctx context.Context, userID, planID string) (string, error)
	CreatePortalLink(ctx context.Context, userID string) (string, error)
}

const orderIDSeparator = "--"

// BuildOrderID encodes the plan and user into a provider order id so
// the asynchronous payment notification can be mapped back.
func BuildOrderID(planID, userID string) string {
	return planID + orderIDSeparator + userID
}

// ParseOrderID splits an order id produced by BuildOrderID.
func ParseOrderID(orderID string) (planID, userID string, err error) {
	planID, userID, found := strings.Cut(orderID, orderIDSeparator)
	if !found || planID == "" || userID == "" {
		return "", "", fmt.Errorf("malformed order id: %s", orderID)
	}
	return planID, userID, nil
}
