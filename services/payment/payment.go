package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	paymentRepo "medicare/database/repository/payment"
	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type PaymentService interface {
	// CreateIntent returns the client secret for a card payment of price.
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, principal string, payment models.Payment) (*models.Payment, error)
	History(ctx context.Context, principal, email string) ([]models.Payment, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
}

var (
	ErrInvalidAmount      = utils.NewError(utils.KindBadRequest, "price must be positive")
	ErrGatewayUnavailable = utils.NewError(utils.KindUnavailable, "payment gateway is not configured")
	ErrTransactionMissing = utils.NewError(utils.KindBadRequest, "transactionId is required")
)

// DefaultPaymentService is the production implementation. Gateway is nil
// when no processor key is configured.
type DefaultPaymentService struct {
	Repo     paymentRepo.PaymentRepository
	Gateway  Gateway
	Currency string
	Now      func() time.Time
}

func NewPaymentService(repo paymentRepo.PaymentRepository, gateway Gateway, currency string) *DefaultPaymentService {
	return &DefaultPaymentService{Repo: repo, Gateway: gateway, Currency: currency, Now: time.Now}
}

// AmountCents converts a price in currency units to integer cents.
func AmountCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	cents := AmountCents(price)
	if price <= 0 || cents <= 0 {
		return "", ErrInvalidAmount
	}
	if s.Gateway == nil {
		return "", ErrGatewayUnavailable
	}
	secret, err := s.Gateway.CreateIntent(ctx, cents, s.Currency)
	if err != nil {
		return "", err
	}
	utils.GetLogger().Info("Payment intent created", zap.Int64("amount", cents), zap.String("currency", s.Currency))
	return secret, nil
}

func (s *DefaultPaymentService) Record(ctx context.Context, principal string, payment models.Payment) (*models.Payment, error) {
	if payment.Email != principal {
		return nil, utils.ErrForbidden
	}
	if strings.TrimSpace(payment.TransactionID) == "" {
		return nil, ErrTransactionMissing
	}
	if payment.Price <= 0 {
		return nil, ErrInvalidAmount
	}
	payment.ID = primitive.NilObjectID
	if payment.Status == "" {
		payment.Status = "succeeded"
	}
	payment.Date = s.Now().UTC()
	if _, err := s.Repo.Create(ctx, &payment); err != nil {
		return nil, fmt.Errorf("record payment %s: %w", payment.TransactionID, err)
	}
	return &payment, nil
}

func (s *DefaultPaymentService) History(ctx context.Context, principal, email string) ([]models.Payment, error) {
	if email != principal {
		return nil, utils.ErrForbidden
	}
	payments, err := s.Repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("payment history %s: %w", email, err)
	}
	return payments, nil
}

func (s *DefaultPaymentService) ListAll(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
