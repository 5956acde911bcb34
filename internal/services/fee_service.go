package services

import (
	"errors"
	"fmt"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
)

var (
	ErrFacilityNotFound = errors.New("facility not found")
)

// ComputeDue returns a member's periodic due amount: the base maintenance fee
// plus the fee of every subscribed facility that exists in the schedule.
// Names absent from the schedule contribute zero rather than failing, so a
// facility removed from the pricelist does not break existing subscriptions.
func ComputeDue(subscribedFacilities []string, feeSchedule map[string]float64, baseFee float64) float64 {
	due := baseFee
	for _, name := range subscribedFacilities {
		due += feeSchedule[name]
	}
	return due
}

// --- FeeService Interface ---
type FeeService interface {
	GetFacilities() ([]models.Facility, error)
	GetFeeSchedule() (map[string]float64, error)
	BaseFee() float64
	DueForMember(memberID int64) (float64, error)
}

// --- feeService Implementation ---
type feeService struct {
	facilityRepo repositories.FacilityRepository
	memberRepo   repositories.MemberRepository
	baseFee      float64
}

// NewFeeService creates a new instance of FeeService.
func NewFeeService(facilityRepo repositories.FacilityRepository, memberRepo repositories.MemberRepository, baseFee float64) FeeService {
	return &feeService{
		facilityRepo: facilityRepo,
		memberRepo:   memberRepo,
		baseFee:      baseFee,
	}
}

func (s *feeService) GetFacilities() ([]models.Facility, error) {
	facilities, err := s.facilityRepo.GetFacilities()
	if err != nil {
		return nil, fmt.Errorf("failed to get facilities: %w", err)
	}
	return facilities, nil
}

// GetFeeSchedule returns the facility→fee mapping used by the calculator.
func (s *feeService) GetFeeSchedule() (map[string]float64, error) {
	facilities, err := s.facilityRepo.GetFacilities()
	if err != nil {
		return nil, fmt.Errorf("failed to load fee schedule: %w", err)
	}
	schedule := make(map[string]float64, len(facilities))
	for _, f := range facilities {
		schedule[f.Name] = f.Fee
	}
	return schedule, nil
}

func (s *feeService) BaseFee() float64 {
	return s.baseFee
}

// DueForMember computes the periodic due amount for one member from their
// current facility subscriptions.
func (s *feeService) DueForMember(memberID int64) (float64, error) {
	member, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrMemberNotFound
		}
		return 0, fmt.Errorf("failed to find member for due computation: %w", err)
	}
	schedule, err := s.GetFeeSchedule()
	if err != nil {
		return 0, err
	}
	return ComputeDue(member.SubscribedFacilities, schedule, s.baseFee), nil
}
