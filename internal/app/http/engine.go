// Package routes builds the HTTP engine: middleware, route table and the server that
// runs it.
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"videogame-catalog/config"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/app/http/middleware"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/security"
	"videogame-catalog/internal/store"
)

type Dependencies struct {
	Store  *store.Store
	Tokens *security.Tokens
	Hasher security.Hasher
	Logger zerolog.Logger
}

func (d Dependencies) responder() respond.Responder {
	return respond.NewResponder(d.Logger.With().Str("component", "http").Logger())
}

func NewEngine(cfg config.Config, d Dependencies) *gin.Engine {
	responder := d.responder()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.ContextWithFallback = true

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Logger.With().Str("component", "access").Logger()))
	r.Use(middleware.Recover(d.Logger, responder))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.SanitizeInput(responder))

	r.NoRoute(func(c *gin.Context) {
		responder.WriteError(c, errs.NewNotFound("route"))
	})
	r.NoMethod(func(c *gin.Context) {
		responder.WriteError(c, errs.NewMethodNotAllowed(c.Request.Method))
	})

	RegisterRoutes(r, d)
	return r
}
