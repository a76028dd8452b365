package payment

import (
	"context"
	"crypto/sha512"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"gourmet-bot-be/pkg/quota"
)

// MidtransGateway issues Snap checkout links for plan purchases. The
// portal link is a static billing page on the client side since the
// provider has no hosted customer portal.
type MidtransGateway struct {
	client        snap.Client
	catalog       *quota.Catalog
	serverKey     string
	portalBaseURL string
}

func NewMidtransGateway(serverKey string, production bool, portalBaseURL string, catalog *quota.Catalog) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &MidtransGateway{
		catalog:       catalog,
		serverKey:     serverKey,
		portalBaseURL: portalBaseURL,
	}
	g.client.New(serverKey, env)
	return g
}

func (g *MidtransGateway) CreateCheckoutLink(ctx context.Context, userID, planID string) (string, error) {
	plan, ok := g.catalog.ByID(planID)
	if !ok {
		return "", fmt.Errorf("unknown plan: %s", planID)
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  BuildOrderID(plan.ID, userID),
			GrossAmt: plan.Price,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.ID,
				Price: plan.Price,
				Qty:   1,
				Name:  plan.Label,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := g.client.CreateTransaction(snapReq)
	if midErr != nil {
		return "", fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return snapResp.RedirectURL, nil
}

func (g *MidtransGateway) CreatePortalLink(ctx context.Context, userID string) (string, error) {
	if g.portalBaseURL == "" {
		return "", fmt.Errorf("billing portal url not configured")
	}
	return fmt.Sprintf("%s?user=%s", g.portalBaseURL, userID), nil
}

// VerifyNotificationSignature checks the provider's webhook signature,
// computed as SHA512(order_id + status_code + gross_amount + server_key).
func (g *MidtransGateway) VerifyNotificationSignature(orderID, statusCode, grossAmount, signature string) bool {
	input := orderID + statusCode + grossAmount + g.serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	return signature == expected
}
