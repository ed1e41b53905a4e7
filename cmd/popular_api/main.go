package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-popular/internal/cache"
	"github.com/DjordjeVuckovic/news-popular/internal/nyt"
	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/router"
	"github.com/DjordjeVuckovic/news-popular/internal/server"
	"github.com/DjordjeVuckovic/news-popular/internal/usecase"
	pkgserver "github.com/DjordjeVuckovic/news-popular/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupHealthChecks()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Popular Articles API is running")
	})

	var clientOpts []nyt.ClientOption
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, nyt.WithBaseURL(cfg.BaseURL))
	}
	client := nyt.NewClient(cfg.ApiKey, clientOpts...)

	articleCache := cache.New(cfg.CacheTTL, nil)
	repo := repository.NewCachedArticlesRepository(client, articleCache)

	articlesRouter := router.NewArticlesRouter(
		s.Echo,
		usecase.NewGetMostPopularArticlesUseCase(repo),
		usecase.NewGetArticleDetailsUseCase(repo),
		usecase.NewSearchArticlesUseCase(repo),
		usecase.NewGetSectionsUseCase(repo),
	)
	articlesRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
