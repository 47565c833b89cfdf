package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"choreboard/internal/metric"
	"choreboard/internal/model"
	"choreboard/internal/repositories"
)

// RoommateService defines business-logic operations for roommates.
type RoommateService interface {
	Create(ctx context.Context, rm *model.Roommate) (*model.Roommate, error)
	List(ctx context.Context) ([]model.Roommate, error)
	Update(ctx context.Context, rm *model.Roommate) (*model.Roommate, error)
	// Delete unassigns the roommate's tasks, then removes the roommate.
	// It returns the number of tasks that were unassigned.
	Delete(ctx context.Context, id int64) (int64, error)

	SetCacheClient(rdb *redis.Client)
}

type roommateService struct {
	repo repositories.RoommateRepository
}

func NewRoommateService(repo repositories.RoommateRepository) RoommateService {
	return &roommateService{repo: repo}
}

func (s *roommateService) SetCacheClient(rdb *redis.Client) {
	s.repo.SetCacheClient(rdb)
}

func (s *roommateService) Create(ctx context.Context, rm *model.Roommate) (*model.Roommate, error) {
	if err := normalizeRoommate(rm); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	metric.IncRoommateCount()
	return rm, nil
}

func (s *roommateService) List(ctx context.Context) ([]model.Roommate, error) {
	return s.repo.List(ctx)
}

func (s *roommateService) Update(ctx context.Context, rm *model.Roommate) (*model.Roommate, error) {
	if err := normalizeRoommate(rm); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *roommateService) Delete(ctx context.Context, id int64) (int64, error) {
	unassigned, deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted {
		metric.DecRoommateCount()
	}
	return unassigned, nil
}

func normalizeRoommate(rm *model.Roommate) error {
	rm.Name = strings.TrimSpace(rm.Name)
	rm.Email = strings.TrimSpace(rm.Email)
	switch {
	case rm.Name == "" && rm.Email == "":
		return fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	case rm.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case rm.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return nil
}
