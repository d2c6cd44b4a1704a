package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tescursos/internal/models/db_models"
)

type ProgressRepository interface {
	MarkCompleted(ctx context.Context, userID, moduleSlug string) error
	CountCompleted(ctx context.Context, userID string) (int64, error)
	ListCompletedSlugs(ctx context.Context, userID string) ([]string, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) MarkCompleted(ctx context.Context, userID, moduleSlug string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(&db_models.Progress{
		UserID:     userID,
		ModuleSlug: moduleSlug,
		Completed:  true,
	}).Error
}

func (r *progressRepository) CountCompleted(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Progress{}).
		Where("user_id = ? AND completed = TRUE", userID).
		Count(&count).Error
	return count, err
}

func (r *progressRepository) ListCompletedSlugs(ctx context.Context, userID string) ([]string, error) {
	var slugs []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Progress{}).
		Where("user_id = ? AND completed = TRUE", userID).
		Pluck("module_slug", &slugs).Error
	return slugs, err
}

func (r *progressRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Progress{}, "user_id = ?", userID).Error
}
