package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Algo-jtx/SoulSpace/internal/common"
	"github.com/Algo-jtx/SoulSpace/internal/server/models"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

// CapsuleService manages time capsules. The open-date rule is enforced here
// on both create and update; the clock is injectable for tests.
type CapsuleService struct {
	repos repomanager.Manager
	now   func() time.Time
}

func NewCapsuleService(repos repomanager.Manager) *CapsuleService {
	return &CapsuleService{repos: repos, now: time.Now}
}

// WithClock replaces the service clock. Test hook.
func (s *CapsuleService) WithClock(now func() time.Time) *CapsuleService {
	s.now = now
	return s
}

func (s *CapsuleService) List(ctx context.Context, userID int64) ([]*models.TimeCapsule, error) {
	capsules, err := s.repos.Capsules().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing time capsules: %w", err)
	}
	return capsules, nil
}

func (s *CapsuleService) Get(ctx context.Context, id, userID int64) (*models.TimeCapsule, error) {
	capsule, err := s.repos.Capsules().Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return capsule, nil
}

func (s *CapsuleService) Create(ctx context.Context, userID int64, message string, openDate time.Time) (*models.TimeCapsule, error) {
	capsule := &models.TimeCapsule{UserID: userID, Message: message, OpenDate: openDate}
	if err := capsule.Validate(s.now()); err != nil {
		return nil, err
	}

	created, err := s.repos.Capsules().Create(ctx, capsule)
	if err != nil {
		return nil, fmt.Errorf("error creating time capsule: %w", err)
	}
	return created, nil
}

// CapsulePatch carries the optional fields of PATCH /time_capsules/:id.
type CapsulePatch struct {
	Message  *string
	OpenDate *time.Time
}

func (s *CapsuleService) Update(ctx context.Context, id, userID int64, patch CapsulePatch) (*models.TimeCapsule, error) {
	capsule, err := s.repos.Capsules().Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Message != nil {
		capsule.Message = *patch.Message
	}
	if capsule.Message == "" {
		return nil, common.NewValidationError("Message cannot be empty.")
	}
	// The future-date rule only applies to a supplied open_date; an already
	// sealed capsule whose date has passed can still have its message edited.
	if patch.OpenDate != nil {
		capsule.OpenDate = *patch.OpenDate
		if err := capsule.Validate(s.now()); err != nil {
			return nil, err
		}
	}

	updated, err := s.repos.Capsules().Update(ctx, capsule)
	if err != nil {
		return nil, fmt.Errorf("error updating time capsule: %w", err)
	}
	return updated, nil
}

func (s *CapsuleService) Delete(ctx context.Context, id, userID int64) error {
	return s.repos.Capsules().Delete(ctx, id, userID)
}
