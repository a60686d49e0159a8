package routes

import (
	"github.com/gin-gonic/gin"

	adminapi "videogame-catalog/internal/api/admin"
	authapi "videogame-catalog/internal/api/auth"
	"videogame-catalog/internal/api/categories"
	"videogame-catalog/internal/api/games"
	"videogame-catalog/internal/api/genres"
	"videogame-catalog/internal/api/health"
	"videogame-catalog/internal/api/platforms"
	"videogame-catalog/internal/api/publications"
	"videogame-catalog/internal/api/users"
	"videogame-catalog/internal/api/videogames"
	"videogame-catalog/internal/app/http/middleware"
)

func RegisterRoutes(r *gin.Engine, d Dependencies) {
	responder := d.responder()

	authH := authapi.NewHandler(d.Store, d.Tokens, d.Hasher, responder)
	usersH := users.NewHandler(d.Store, d.Hasher, responder)
	videoGamesH := videogames.NewHandler(d.Store, responder)
	platformsH := platforms.NewHandler(d.Store, responder)
	publicationsH := publications.NewHandler(d.Store, responder)
	gamesH := games.NewHandler(d.Store, responder)
	genresH := genres.NewHandler(d.Store, responder)
	categoriesH := categories.NewHandler(d.Store, responder)
	adminH := adminapi.NewHandler(d.Store, responder)

	r.GET("/health", health.NewHandler(d.Store).Check)

	// Public
	r.POST("/auth/login", authH.Login)
	r.POST("/users", usersH.Register)

	r.GET("/video-games", videoGamesH.List)
	r.GET("/video-games/:id", videoGamesH.Get)
	r.GET("/platforms", platformsH.List)
	r.GET("/platforms/:code", platformsH.Get)
	r.GET("/publications", publicationsH.List)
	r.GET("/publications/:id", publicationsH.Get)
	r.GET("/genres", genresH.List)
	r.GET("/genres/:id", genresH.Get)
	r.GET("/categories", categoriesH.List)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.Authenticate(d.Tokens, d.Store, responder))

	auth.GET("/users/me", usersH.Me)
	auth.PATCH("/users/me", usersH.UpdateMe)
	auth.DELETE("/users/me", usersH.DeleteMe)
	auth.GET("/users/:id", usersH.Get)

	auth.GET("/users/me/games", gamesH.ListMine)
	auth.POST("/users/me/games", gamesH.CreateMine)
	auth.PATCH("/users/me/games/:publicationId", gamesH.UpdateMine)
	auth.DELETE("/users/me/games/:publicationId", gamesH.DeleteMine)
	auth.GET("/games", gamesH.List)
	auth.GET("/games/:userId/:publicationId", gamesH.Get)

	// Admin
	admin := auth.Group("/")
	admin.Use(middleware.RequireAdmin(responder))

	admin.GET("/admin/stats", adminH.Stats)

	admin.GET("/users", usersH.List)
	admin.PATCH("/users/:id", usersH.Update)
	admin.DELETE("/users/:id", usersH.Delete)

	admin.POST("/video-games", videoGamesH.Create)
	admin.PATCH("/video-games/:id", videoGamesH.Update)
	admin.DELETE("/video-games/:id", videoGamesH.Delete)

	admin.POST("/platforms", platformsH.Create)
	admin.PATCH("/platforms/:code", platformsH.Update)
	admin.DELETE("/platforms/:code", platformsH.Delete)

	admin.POST("/publications", publicationsH.Create)
	admin.PATCH("/publications/:id", publicationsH.Update)
	admin.DELETE("/publications/:id", publicationsH.Delete)

	admin.POST("/games", gamesH.Create)
	admin.DELETE("/games/:userId/:publicationId", gamesH.Delete)

	admin.POST("/genres", genresH.Create)
	admin.PATCH("/genres/:id", genresH.Update)
	admin.DELETE("/genres/:id", genresH.Delete)

	admin.POST("/categories", categoriesH.Create)
	admin.PATCH("/categories/:genreId/:videoGameId", categoriesH.Update)
	admin.DELETE("/categories/:genreId/:videoGameId", categoriesH.Delete)
}
