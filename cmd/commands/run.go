package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"atelier"
	"atelier/config"
	"atelier/internal/application/usecase"
	"atelier/internal/infrastructure/database"
	"atelier/internal/infrastructure/storage"
	"atelier/internal/presentation/handler"
	"atelier/internal/presentation/middleware"
	"atelier/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running atelier", "version", atelier.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	resolver := storage.NewResolver(cfg.Storage.BaseDir)
	deriver := storage.NewDeriver(resolver)
	remover := storage.NewRemover(resolver)

	blogs := usecase.NewBlog(database.NewBlogRepository(db), deriver, remover,
		cfg.Storage.WidthsFor("blog", usecase.DefaultCoverWidths()))
	portfolios := usecase.NewPortfolio(database.NewPortfolioRepository(db), deriver, remover,
		cfg.Storage.WidthsFor("portfolio_cover", usecase.DefaultCoverWidths()),
		cfg.Storage.WidthsFor("portfolio_gallery", usecase.DefaultMediaWidths()))
	media := usecase.NewMedia(database.NewMediaRepository(db), deriver, remover,
		cfg.Storage.WidthsFor("media", usecase.DefaultMediaWidths()))
	categories := usecase.NewCategory(database.NewCategoryRepository(db))

	intake, err := handler.NewIntake(cfg.Storage.TempDir)
	if err != nil {
		ExitOnError(err)
	}

	blogHandler := handler.NewBlogHandler(blogs, intake)
	portfolioHandler := handler.NewPortfolioHandler(portfolios, intake)
	mediaHandler := handler.NewMediaHandler(media, intake)
	categoryHandler := handler.NewCategoryHandler(categories)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(middleware.Auth(cfg.Auth))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.Static(storage.URLPrefix, cfg.Storage.BaseDir)

	admin := middleware.RequireRole("admin")
	api := e.Group("/api")

	blogGroup := api.Group("/blogs")
	blogGroup.POST("", blogHandler.HandleCreate, admin)
	blogGroup.GET("", blogHandler.HandleList)
	blogGroup.GET("/:slug", blogHandler.HandleGet)
	blogGroup.PUT("/:slug", blogHandler.HandleUpdate, admin)
	blogGroup.DELETE("/:slug", blogHandler.HandleDelete, admin)

	portfolioGroup := api.Group("/portfolios")
	portfolioGroup.POST("", portfolioHandler.HandleCreate, admin)
	portfolioGroup.GET("", portfolioHandler.HandleList)
	portfolioGroup.GET("/:slug", portfolioHandler.HandleGet)
	portfolioGroup.PUT("/:slug", portfolioHandler.HandleUpdate, admin)
	portfolioGroup.DELETE("/:slug", portfolioHandler.HandleDelete, admin)

	mediaGroup := api.Group("/media", admin)
	mediaGroup.POST("", mediaHandler.HandleUpload)
	mediaGroup.GET("", mediaHandler.HandleList)
	mediaGroup.GET("/:id", mediaHandler.HandleGet)
	mediaGroup.PUT("/:id", mediaHandler.HandleUpdate)
	mediaGroup.DELETE("/:id", mediaHandler.HandleDelete)

	categoryGroup := api.Group("/categories")
	categoryGroup.POST("", categoryHandler.HandleCreate, admin)
	categoryGroup.GET("", categoryHandler.HandleList)
	categoryGroup.GET("/:id", categoryHandler.HandleGet)
	categoryGroup.PUT("/:id", categoryHandler.HandleUpdate, admin)
	categoryGroup.DELETE("/:id", categoryHandler.HandleDelete, admin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
	if err := db.Stop(); err != nil {
		ExitOnError(err)
	}
}
