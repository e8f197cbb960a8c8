package app

import (
	"fmt"
	"io"
	"net/http"

	"band-app-go/internal/config"
	"band-app-go/internal/db"
	feeddomain "band-app-go/internal/domain/feed"
	groupdomain "band-app-go/internal/domain/group"
	livedomain "band-app-go/internal/domain/live"
	socialdomain "band-app-go/internal/domain/social"
	userdomain "band-app-go/internal/domain/user"
	"band-app-go/internal/repository/inmemory"
	feedrepo "band-app-go/internal/repository/postgres/feed"
	grouprepo "band-app-go/internal/repository/postgres/group"
	liverepo "band-app-go/internal/repository/postgres/live"
	socialrepo "band-app-go/internal/repository/postgres/social"
	userrepo "band-app-go/internal/repository/postgres/user"
	redisrepo "band-app-go/internal/repository/redis"
	"band-app-go/internal/transport/httpserver"
	"band-app-go/internal/transport/httpserver/handler"
	"band-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	cache      io.Closer
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	groups := grouprepo.NewPostgres(dbConn)

	groupCache, cacheCloser, err := newGroupCache(cfg.Cache, log)
	if err != nil {
		return nil, err
	}

	userService := userdomain.NewService(userrepo.NewPostgres(dbConn))
	groupService := groupdomain.NewServiceWithCache(groups, groupCache, cfg.Cache.TTL)
	lives := liverepo.NewPostgres(dbConn)
	liveService := livedomain.NewService(lives, groups)
	social := socialrepo.NewPostgres(dbConn)
	socialService := socialdomain.NewService(social)
	feedService := feeddomain.NewServiceWithFanoutLimit(feedrepo.NewPostgres(dbConn), social, groups, lives, cfg.Feed.FanoutLimit)

	handlers := handler.New(userService, groupService, liveService, socialService, feedService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, userService, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		cache:      cacheCloser,
	}, nil
}

func newGroupCache(cfg config.CacheConfig, log logger.Logger) (groupdomain.Cache, io.Closer, error) {
	switch cfg.Backend {
	case "off", "":
		return nil, nil, nil
	case "memory":
		return inmemory.NewGroupCache(), nil, nil
	case "redis":
		cache, err := redisrepo.NewGroupCache(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return cache, cache, nil
	default:
		return nil, nil, fmt.Errorf("app: unknown cache backend %q", cfg.Backend)
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			return err
		}
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
