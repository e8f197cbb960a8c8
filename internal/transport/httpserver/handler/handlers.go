package handler

import (
	feeddomain "band-app-go/internal/domain/feed"
	groupdomain "band-app-go/internal/domain/group"
	livedomain "band-app-go/internal/domain/live"
	socialdomain "band-app-go/internal/domain/social"
	userdomain "band-app-go/internal/domain/user"
	"band-app-go/pkg/logger"
)

type Handlers struct {
	Users  *userdomain.Service
	Groups *groupdomain.Service
	Lives  *livedomain.Service
	Social *socialdomain.Service
	Feeds  *feeddomain.Service
	log    logger.Logger
}

func New(users *userdomain.Service, groups *groupdomain.Service, lives *livedomain.Service, social *socialdomain.Service, feeds *feeddomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Users:  users,
		Groups: groups,
		Lives:  lives,
		Social: social,
		Feeds:  feeds,
		log:    log,
	}
}
