package service

import (
	"github.com/plateful/plateful-server/internal/config"
	"github.com/plateful/plateful-server/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Bookmark *BookmarkService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		Bookmark: NewBookmarkService(repos.Bookmark),
	}
}
