package service

import (
	"context"

	"choreboard/internal/model"
	"choreboard/internal/repositories"
)

// RoomService exposes the seeded rooms.
type RoomService interface {
	List(ctx context.Context) ([]model.Room, error)
}

type roomService struct {
	repo repositories.RoomRepository
}

func NewRoomService(repo repositories.RoomRepository) RoomService {
	return &roomService{repo: repo}
}

func (s *roomService) List(ctx context.Context) ([]model.Room, error) {
	return s.repo.List(ctx)
}
