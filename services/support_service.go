package services

import (
	"context"
	"errors"
	"strings"

	"fartburger/models"
	"fartburger/repositories"
)

const AnonymousSupportUser = "Аноним"

type SupportRepository interface {
	Create(ctx context.Context, userName, message string) (*models.SupportMessage, error)
	FindAll(ctx context.Context) ([]models.SupportMessage, error)
	Respond(ctx context.Context, id int, response string) (*models.SupportMessage, error)
}

// SupportService is the inbox behind the public support endpoint and the admin panel.
type SupportService struct {
	supportRepo SupportRepository
}

func NewSupportService(repo SupportRepository) *SupportService {
	return &SupportService{supportRepo: repo}
}

func (s *SupportService) Submit(ctx context.Context, userName, message string) (*models.SupportMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrSupportMessageEmpty
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = AnonymousSupportUser
	}
	return s.supportRepo.Create(ctx, userName, message)
}

func (s *SupportService) List(ctx context.Context) ([]models.SupportMessage, error) {
	return s.supportRepo.FindAll(ctx)
}

func (s *SupportService) Reply(ctx context.Context, id int, response string) (*models.SupportMessage, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, ErrEmptyReply
	}
	msg, err := s.supportRepo.Respond(ctx, id, response)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	return msg, err
}
