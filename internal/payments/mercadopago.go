package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barbershop-backend/internal/models"
)

// Client wraps the Mercado Pago preference API used to generate checkout
// links for completed, unpaid appointments.
type Client struct {
	prefs preference.Client
}

func New(accessToken string) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &Client{prefs: preference.NewClient(cfg)}, nil
}

func (c *Client) CheckoutLink(
	ctx context.Context,
	ap *models.Appointment,
) (string, error) {

	if ap.Value == nil {
		return "", fmt.Errorf("appointment %d has no value", ap.ID)
	}

	req := preference.Request{
		ExternalReference: fmt.Sprintf("appointment-%d", ap.ID),
		Items: []preference.ItemRequest{
			{
				Title:     ap.Service,
				Quantity:  1,
				UnitPrice: *ap.Value,
			},
		},
	}

	resp, err := c.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
