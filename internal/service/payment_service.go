// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/pkg/mailer"
	"resumeforge-be/internal/repository/specification"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/events"
	pktNats "resumeforge-be/pkg/nats"
	"resumeforge-be/pkg/pricing"
)

type IPaymentService interface {
	CreateCheckout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	GetOrderStatus(ctx context.Context, userId uuid.UUID, orderId uuid.UUID) (*dto.OrderStatusResponse, error)
}

type paymentService struct {
	uowFactory         unitofwork.RepositoryFactory
	entitlementService EntitlementService
	eventPublisher     *pktNats.Publisher
	emailService       mailer.IEmailService
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	entitlementService EntitlementService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
) IPaymentService {
	return &paymentService{
		uowFactory:         uowFactory,
		entitlementService: entitlementService,
		eventPublisher:     eventPublisher,
		emailService:       emailService,
	}
}

// CreateCheckout opens a Snap transaction for either a plan upgrade or a
// credit pack. The order row stays pending until the webhook settles it.
func (s *paymentService) CreateCheckout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	var itemName string
	var amount float64
	order := &entity.PaymentOrder{
		Id:        uuid.New(),
		UserId:    userId,
		Status:    entity.PaymentStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch {
	case req.PlanId != "":
		plan := pricing.GetPlan(pricing.PlanID(req.PlanId))
		if !pricing.ValidPlan(pricing.PlanID(req.PlanId)) || plan.Price == 0 {
			return nil, errors.New("plan not purchasable")
		}
		planId := string(plan.ID)
		order.PlanId = &planId
		order.BillingCycle = req.BillingCycle
		if order.BillingCycle == "" {
			order.BillingCycle = string(plan.BillingCycle)
		}
		itemName = plan.Name
		amount = plan.Price
	case req.PackId != "":
		pack, ok := pricing.GetCreditPack(req.PackId)
		if !ok {
			return nil, errors.New("credit pack not found")
		}
		packId := pack.ID
		order.PackId = &packId
		itemName = pack.Label
		amount = pack.Price
	default:
		return nil, errors.New("either plan_id or pack_id is required")
	}
	order.GrossAmount = amount

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if err := uow.PaymentOrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	// External gateway call happens after the order row is committed.
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/app?payment=success", frontendURL)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Id.String(),
			GrossAmt: int64(amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FirstName,
			LName: req.LastName,
			Email: req.Email,
			Phone: req.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    order.Id.String(),
				Price: int64(amount),
				Qty:   1,
				Name:  itemName,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeSubscriptionCreated,
			Data: map[string]interface{}{
				"order_id":    order.Id,
				"user_id":     userId,
				"item":        itemName,
				"amount":      amount,
				"currency":    "USD",
				"occurred_at": time.Now(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeSubscriptionCreated, err)
		}
	}

	return &dto.CheckoutResponse{
		OrderId:         order.Id.String(),
		GrossAmount:     amount,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

// HandleNotification processes a Midtrans webhook. Signature is
// SHA512(order_id + status_code + gross_amount + server_key).
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	fmt.Printf("\n[WEBHOOK] ========== Processing Notification ==========\n")
	fmt.Printf("[WEBHOOK] OrderId: %s | Status: %s\n", req.OrderId, req.TransactionStatus)

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		fmt.Println("[WEBHOOK ERROR] MIDTRANS_SERVER_KEY not configured")
		return fmt.Errorf("server configuration error")
	}

	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Invalid order_id format: %s\n", req.OrderId)
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.PaymentOrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		fmt.Printf("[WEBHOOK ERROR] Order not found: %s\n", req.OrderId)
		return fmt.Errorf("order not found")
	}
	if order.Status == entity.PaymentStatusPaid {
		// Duplicate delivery, already settled.
		return nil
	}

	var newStatus entity.PaymentStatus
	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			newStatus = entity.PaymentStatusFailed
		} else {
			newStatus = entity.PaymentStatusPaid
		}
	case "pending":
		newStatus = entity.PaymentStatusPending
	case "deny", "cancel", "expire", "failure":
		newStatus = entity.PaymentStatusFailed
	default:
		fmt.Printf("[WEBHOOK] Ignoring transaction status %q\n", req.TransactionStatus)
		return nil
	}

	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if err := uow.PaymentOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if newStatus != entity.PaymentStatusPaid {
		return nil
	}

	return s.settle(ctx, order)
}

// settle applies what the paid order bought.
func (s *paymentService) settle(ctx context.Context, order *entity.PaymentOrder) error {
	switch {
	case order.PlanId != nil:
		sub, err := s.entitlementService.UpgradePlan(
			ctx,
			order.UserId,
			pricing.PlanID(*order.PlanId),
			pricing.BillingCycle(order.BillingCycle),
		)
		if err != nil {
			return err
		}
		s.sendUpgradeConfirmation(ctx, order.UserId, pricing.PlanID(*order.PlanId), sub)
		return nil
	case order.PackId != nil:
		pack, ok := pricing.GetCreditPack(*order.PackId)
		if !ok {
			return fmt.Errorf("unknown credit pack on paid order: %s", *order.PackId)
		}
		notes := fmt.Sprintf("purchase %s (%d credits)", pack.Label, pack.Credits)
		_, err := s.entitlementService.GrantCredits(ctx, order.UserId, pack.Credits, entity.CreditTransactionPurchase, notes)
		return err
	}
	return fmt.Errorf("paid order %s has neither plan nor pack", order.Id)
}

// sendUpgradeConfirmation is best-effort; a failed mail never fails the webhook.
func (s *paymentService) sendUpgradeConfirmation(ctx context.Context, userId uuid.UUID, planId pricing.PlanID, sub *dto.SubscriptionDTO) {
	if s.emailService == nil {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		fmt.Printf("[WARN] Could not load user %s for upgrade email: %v\n", userId, err)
		return
	}
	plan := pricing.GetPlan(planId)
	if err := s.emailService.SendUpgradeConfirmation(user.Email, plan.Name, sub.Credits); err != nil {
		fmt.Printf("[WARN] Failed to send upgrade email to %s: %v\n", user.Email, err)
	}
}

func (s *paymentService) GetOrderStatus(ctx context.Context, userId uuid.UUID, orderId uuid.UUID) (*dto.OrderStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.PaymentOrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order not found")
	}

	resp := &dto.OrderStatusResponse{
		OrderId:       order.Id.String(),
		PaymentStatus: string(order.Status),
		UserId:        order.UserId,
	}
	if order.PlanId != nil {
		resp.PlanId = *order.PlanId
	}
	if order.PackId != nil {
		resp.PackId = *order.PackId
	}
	return resp, nil
}
