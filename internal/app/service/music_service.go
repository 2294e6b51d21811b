package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
)

var ErrTrackNotFound = errors.New("music track not found")

type MusicService interface {
	GetTracks() ([]model.Music, error)
	GetTrack(id uint) (*model.Music, error)
}

type musicService struct {
	musicRepo repository.MusicRepository
}

func NewMusicService(musicRepo repository.MusicRepository) MusicService {
	return &musicService{musicRepo: musicRepo}
}

func (s *musicService) GetTracks() ([]model.Music, error) {
	return s.musicRepo.FindAll()
}

func (s *musicService) GetTrack(id uint) (*model.Music, error) {
	track, err := s.musicRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	return track, nil
}
