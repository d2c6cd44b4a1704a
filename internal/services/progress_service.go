package services

import (
	"context"
	"errors"

	"tescursos/internal/repositories"
	"tescursos/pkg/utils"
)

type ProgressServiceInterface interface {
	MarkCompleted(ctx context.Context, userID, moduleSlug string) error
	ListCompleted(ctx context.Context, userID string) ([]string, error)
}

type ProgressService struct {
	progressRepo repositories.ProgressRepository
	content      ContentServiceInterface
}

func NewProgressService(progressRepo repositories.ProgressRepository, content ContentServiceInterface) ProgressServiceInterface {
	return &ProgressService{
		progressRepo: progressRepo,
		content:      content,
	}
}

func (s *ProgressService) MarkCompleted(ctx context.Context, userID, moduleSlug string) error {
	// Only known modules count toward the certificate.
	if _, err := s.content.GetModuleBySlug(moduleSlug); err != nil {
		if errors.Is(err, utils.ErrModuleNotFound) {
			return utils.ErrModuleNotFound
		}
		return utils.ErrDatabaseError
	}

	if err := s.progressRepo.MarkCompleted(ctx, userID, moduleSlug); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProgressService) ListCompleted(ctx context.Context, userID string) ([]string, error) {
	slugs, err := s.progressRepo.ListCompletedSlugs(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, nil
}
