package repositories

import (
	"context"
	"errors"

	"herhzzz/internal/models/db_models"

	"gorm.io/gorm"
)

type AudioRepository interface {
	ListAll(ctx context.Context) ([]db_models.AudioTrack, error)
	FindByName(ctx context.Context, name string) (*db_models.AudioTrack, error)
}

type audioRepository struct {
	db *gorm.DB
}

func NewAudioRepository(db *gorm.DB) AudioRepository {
	return &audioRepository{db: db}
}

func (a *audioRepository) ListAll(ctx context.Context) ([]db_models.AudioTrack, error) {
	var tracks []db_models.AudioTrack
	err := a.db.WithContext(ctx).Order("cycle_phase, name").Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

func (a *audioRepository) FindByName(ctx context.Context, name string) (*db_models.AudioTrack, error) {
	var track db_models.AudioTrack
	err := a.db.WithContext(ctx).First(&track, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &track, nil
}
