package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	apperrors "github.com/blueberries/blueberries-backend/internal/errors"
	"github.com/blueberries/blueberries-backend/internal/middleware"
)

type MusicController struct {
	musicService service.MusicService
}

func NewMusicController(musicService service.MusicService) *MusicController {
	return &MusicController{musicService: musicService}
}

// List returns all music tracks
// GET /api/music
func (ctrl *MusicController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	tracks, err := ctrl.musicService.GetTracks()
	if err != nil {
		log.Error("Failed to list music tracks", err)
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"music": tracks})
}

// Get returns a single track
// GET /api/music/:id
func (ctrl *MusicController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	track, err := ctrl.musicService.GetTrack(id)
	if err != nil {
		if errors.Is(err, service.ErrTrackNotFound) {
			apperrors.NotFound(c, "Трек не найден")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": track})
}
