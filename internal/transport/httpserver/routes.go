package httpserver

import (
	"net/http"
	"time"

	"band-app-go/internal/config"
	"band-app-go/internal/transport/httpserver/handler"
	authmw "band-app-go/internal/transport/httpserver/middleware"
	"band-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, accounts authmw.AccountResolver, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS([]string{"http://localhost:5173"}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		auth := authmw.NewAuth(cfg.Auth, accounts, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Post("/users/signup", handlers.Signup)
			r.Get("/users/me", handlers.AuthMe)
			r.Post("/users/edit", handlers.EditUser)

			r.Post("/groups", handlers.CreateGroup)
			r.Get("/groups", handlers.ListGroups)
			r.Post("/groups/invite", handlers.InviteGroup)
			r.Post("/groups/join", handlers.JoinGroup)
			r.Get("/groups/memberships/{user_id}", handlers.ListMemberships)
			r.Get("/groups/{group_id}", handlers.GetGroup)
			r.Get("/groups/{group_id}/feeds", handlers.GroupFeeds)
			r.Delete("/groups/delete_feed", handlers.DeleteArtistFeed)
			r.Post("/groups/edit/{group_id}", handlers.EditGroup)
			r.Delete("/groups/{group_id}", handlers.DeleteGroup)

			r.Post("/lives", handlers.CreateLive)
			r.Get("/lives", handlers.ListLives)
			r.Get("/lives/{live_id}", handlers.GetLive)

			r.Post("/user_social/follow_group", handlers.FollowGroup)
			r.Post("/user_social/unfollow_group", handlers.UnfollowGroup)
			r.Post("/user_social/follow_user", handlers.FollowUser)
			r.Post("/user_social/unfollow_user", handlers.UnfollowUser)
			r.Post("/user_social/like_live", handlers.LikeLive)
			r.Post("/user_social/unlike_live", handlers.UnlikeLive)
			r.Post("/user_social/like_user_feed", handlers.LikeFeed)
			r.Post("/user_social/unlike_user_feed", handlers.UnlikeFeed)
			r.Get("/user_social/following_groups/{user_id}", handlers.FollowingGroups)
			r.Get("/user_social/group_followers/{group_id}", handlers.GroupFollowers)
			r.Get("/user_social/following_users/{user_id}", handlers.FollowingUsers)
			r.Get("/user_social/user_followers/{user_id}", handlers.UserFollowers)
			r.Post("/user_social/feed_comment", handlers.PostFeedComment)
			r.Get("/user_social/feed_comment/{feed_id}", handlers.FeedComments)
			r.Get("/user_social/group_feeds", handlers.FollowedGroupFeeds)
			r.Get("/user_social/following_user_feeds", handlers.FollowedUserFeeds)
			r.Get("/user_social/upcoming_lives", handlers.UpcomingLives)

			r.Post("/artist_feeds", handlers.CreateArtistFeed)
			r.Post("/user_feeds", handlers.CreateUserFeed)
		})
	})

	return r
}
