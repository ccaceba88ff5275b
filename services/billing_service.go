package services

import (
	"errors"
	"fmt"
	"time"

	"reserva-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound         = errors.New("plan_not_found")
	ErrSubscriptionNotFound = errors.New("subscription_not_found")
)

// BillingService covers the plan/subscription/payment side of the system.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// ---------------- Plans ----------------

func (s *BillingService) ListPlans() ([]models.Plan, error) {
	var list []models.Plan
	if err := s.DB.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve plans: %w", err)
	}
	return list, nil
}

func (s *BillingService) CreatePlan(p *models.Plan) error {
	p.ID = uuid.NewString()
	if err := s.DB.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (s *BillingService) UpdatePlan(id string, p *models.Plan) (*models.Plan, error) {
	var existing models.Plan
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	p.ID = existing.ID
	if err := s.DB.Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return p, nil
}

func (s *BillingService) DeletePlan(id string) error {
	res := s.DB.Where("id = ?", id).Delete(&models.Plan{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// ---------------- Subscriptions ----------------

func (s *BillingService) ListSubscriptions() ([]models.Subscription, error) {
	var list []models.Subscription
	if err := s.DB.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve subscriptions: %w", err)
	}
	return list, nil
}

func (s *BillingService) CreateSubscription(sub *models.Subscription) error {
	sub.ID = uuid.NewString()
	if sub.Status == "" {
		sub.Status = models.SubscriptionActive
	}
	if err := s.DB.Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (s *BillingService) UpdateSubscription(id string, sub *models.Subscription) (*models.Subscription, error) {
	var existing models.Subscription
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	sub.ID = existing.ID
	if err := s.DB.Save(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

func (s *BillingService) DeleteSubscription(id string) error {
	res := s.DB.Where("id = ?", id).Delete(&models.Subscription{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// MarkOverdueSubscriptions flips active subscriptions whose renewal date has
// passed to vencida. Same advisory pattern as the booking expiry sweep: safe
// to call redundantly, re-run on the next list load.
func (s *BillingService) MarkOverdueSubscriptions() error {
	err := s.DB.Model(&models.Subscription{}).
		Where("status = ? AND next_renewal < ?", models.SubscriptionActive, time.Now()).
		Update("status", models.SubscriptionOverdue).Error
	if err != nil {
		return fmt.Errorf("failed to mark overdue subscriptions: %w", err)
	}
	return nil
}

// ---------------- Payments ----------------

func (s *BillingService) ListPayments() ([]models.Payment, error) {
	var list []models.Payment
	if err := s.DB.Order("paid_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	return list, nil
}

func (s *BillingService) CreatePayment(p *models.Payment) error {
	p.ID = uuid.NewString()
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	if err := s.DB.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}
