package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/pricing"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/repository"
	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/store"
)

// PaymentService is the one-way payment confirmation gate. Validating a
// payment is irreversible because it controls loyalty ticket issuance;
// tickets are not retracted if a payment is later disputed (business policy).
type PaymentService struct {
	orders    *store.Collection[models.Order]
	orderRepo repository.OrderRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	queue     RemoteSyncer
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService. The repositories may be
// nil when the remote store is not configured; operations then refuse to run
// instead of crashing.
func NewPaymentService(orders *store.Collection[models.Order], orderRepo repository.OrderRepositoryInterface, userRepo repository.UserRepositoryInterface, queue RemoteSyncer) *PaymentService {
	return &PaymentService{
		orders:    orders,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		queue:     queue,
		now:       time.Now,
	}
}

// ValidatePayment marks an order's payment as received and computes the
// loyalty tickets it earns. The already-validated guard lives here, not in
// the callers: a second call is a no-op reporting Success=false, so a double
// tap can never issue tickets twice. The ticket count is recomputed from the
// total rather than read back, to tolerate stale data.
func (s *PaymentService) ValidatePayment(id string) (models.PaymentValidationResult, error) {
	if s.orderRepo == nil {
		return models.PaymentValidationResult{}, models.ErrRemoteNotConfigured
	}
	order, ok := s.orders.Get(id)
	if !ok {
		return models.PaymentValidationResult{}, models.ErrNotFound
	}
	if order.PaymentValidated {
		log.Printf("💳 order %s already validated, ignoring", id)
		return models.PaymentValidationResult{Success: false}, nil
	}

	validatedAt := s.now()
	order.PaymentValidated = true
	order.PaymentValidatedAt = &validatedAt
	order.TicketsEarned = pricing.TicketsEarned(order.Total)
	s.orders.Put(order)
	log.Printf("💳 order %s payment validated, %d ticket(s) earned", id, order.TicketsEarned)

	repo := s.orderRepo
	saved := order
	s.queue.Enqueue("order.payment "+id, func(ctx context.Context) error {
		return repo.UpdatePayment(ctx, &saved)
	})

	return models.PaymentValidationResult{Success: true, TicketsDistributed: order.TicketsEarned}, nil
}

// DistributeTickets credits the earned tickets to the customer's account and
// then records the distribution. The credit is a synchronous collaborator
// call and must succeed before the order is marked, which is why this step
// is separate from ValidatePayment.
func (s *PaymentService) DistributeTickets(ctx context.Context, id string) error {
	if s.userRepo == nil {
		return models.ErrRemoteNotConfigured
	}
	order, ok := s.orders.Get(id)
	if !ok {
		return models.ErrNotFound
	}
	if !order.PaymentValidated {
		return fmt.Errorf("order %s payment not validated yet", id)
	}
	if order.TicketsDistributed {
		return nil
	}

	if err := s.userRepo.CreditTickets(ctx, order.Customer.Email, order.TicketsEarned); err != nil {
		return fmt.Errorf("failed to credit tickets for order %s: %w", id, err)
	}
	return s.MarkTicketsDistributed(id)
}

// MarkTicketsDistributed records that the customer's account was credited.
// Only meaningful after ValidatePayment.
func (s *PaymentService) MarkTicketsDistributed(id string) error {
	order, ok := s.orders.Get(id)
	if !ok {
		return models.ErrNotFound
	}
	if !order.PaymentValidated {
		return fmt.Errorf("order %s payment not validated yet", id)
	}
	order.TicketsDistributed = true
	s.orders.Put(order)
	log.Printf("🎟️ order %s tickets marked distributed", id)

	if s.orderRepo != nil {
		repo := s.orderRepo
		saved := order
		s.queue.Enqueue("order.tickets "+id, func(ctx context.Context) error {
			return repo.UpdatePayment(ctx, &saved)
		})
	}
	return nil
}
