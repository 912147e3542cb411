package payment

import (
	"context"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type midtransGateway struct {
	client snap.Client
}

func NewMidtransGateway() PaymentGateway {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransGateway{client: client}
}

func (g *midtransGateway) Charge(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: int64(req.Amount * 100),
		},
	}
	if req.Email != "" {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{Email: req.Email}
	}

	resp, err := g.client.CreateTransaction(snapReq)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	// Snap hands back a hosted payment page; settlement arrives via webhook
	// in a real deployment. For this flow a created transaction counts as
	// initiated, not settled.
	return domain.PaymentResult{
		Success:     true,
		Reference:   req.OrderID,
		RedirectURL: resp.RedirectURL,
	}, nil
}
