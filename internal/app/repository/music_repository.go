package repository

import (
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
)

type MusicRepository interface {
	FindAll() ([]model.Music, error)
	FindByID(id uint) (*model.Music, error)
}

type musicRepository struct {
	db *gorm.DB
}

func NewMusicRepository(db *gorm.DB) MusicRepository {
	return &musicRepository{db: db}
}

func (r *musicRepository) FindAll() ([]model.Music, error) {
	var tracks []model.Music
	if err := r.db.Order("id").Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *musicRepository) FindByID(id uint) (*model.Music, error) {
	var track model.Music
	if err := r.db.First(&track, id).Error; err != nil {
		return nil, err
	}
	return &track, nil
}
