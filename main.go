package main

import (
	"context"
	"fmt"
	"log"

	"secondbrain/config"
	"secondbrain/handler"
	"secondbrain/middleware"
	"secondbrain/repository"
	"secondbrain/services"
	"secondbrain/usecase"
	"secondbrain/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type appDeps struct {
	cfg          *config.Config
	userService  *usecase.UserService
	notesService *usecase.NotesService
	tagsService  *usecase.TagsService
	shareService *usecase.ShareService
}

func setupRouter(deps *appDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware(deps.cfg.CORSOrigin))
	router.Use(middleware.RequestSizeLimiter(deps.cfg.MaxBodyBytes))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.GET("/health", handler.HealthHandler)

		auth := public.Group("/auth")
		{
			auth.POST("/signup", func(c *gin.Context) {
				handler.SignupHandler(c, deps.userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, deps.userService)
			})
			auth.POST("/logout", handler.LogoutHandler)
		}

		// Public share resolution: the token is the only credential.
		public.GET("/share/:token", func(c *gin.Context) {
			handler.ResolveShareHandler(c, deps.shareService)
		})
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/session", func(c *gin.Context) {
			handler.SessionHandler(c, deps.userService)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, deps.notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, deps.notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, deps.notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, deps.notesService)
			})
			notes.POST("/:id/favorite", func(c *gin.Context) {
				handler.ToggleFavoriteHandler(c, deps.notesService)
			})
			notes.POST("/:id/archive", func(c *gin.Context) {
				handler.ToggleArchiveHandler(c, deps.notesService)
			})
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", func(c *gin.Context) {
				handler.ListTagsHandler(c, deps.tagsService)
			})
			tags.POST("", func(c *gin.Context) {
				handler.CreateTagHandler(c, deps.tagsService)
			})
			tags.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTagHandler(c, deps.tagsService)
			})
		}

		// Share minting and revocation require ownership of the note.
		protected.POST("/share", func(c *gin.Context) {
			handler.CreateShareHandler(c, deps.shareService)
		})
		protected.DELETE("/share/:noteId", func(c *gin.Context) {
			handler.RevokeShareHandler(c, deps.shareService)
		})
	}

	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	services.InitJWT(cfg.JWTSecret, cfg.TokenTTL)
	utils.InitValidator()

	ctx := context.Background()

	client, err := utils.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	if err := repository.SetupIndexes(ctx, client.Database(cfg.MongoDB)); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	var shareCache *services.ShareCache
	if cfg.RedisURL != "" {
		shareCache, err = services.NewShareCache(cfg.RedisURL, cfg.ShareCacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	usersRepo := repository.GetUsersRepo(client, cfg.MongoDB)
	notesRepo := repository.GetNotesRepo(client, cfg.MongoDB)
	tagsRepo := repository.GetTagsRepo(client, cfg.MongoDB)
	sharesRepo := repository.GetSharesRepo(client, cfg.MongoDB)

	deps := &appDeps{
		cfg:         cfg,
		userService: &usecase.UserService{Users: usersRepo},
		notesService: &usecase.NotesService{
			Notes:  notesRepo,
			Shares: sharesRepo,
			Cache:  shareCache,
		},
		tagsService: &usecase.TagsService{
			Tags:  tagsRepo,
			Notes: notesRepo,
		},
		shareService: &usecase.ShareService{
			Shares: sharesRepo,
			Notes:  notesRepo,
			Cache:  shareCache,
		},
	}

	router := setupRouter(deps)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
