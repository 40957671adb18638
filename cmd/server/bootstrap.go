package main

import (
	"github.com/devyhq/devy-backend/internal/config"
	"github.com/devyhq/devy-backend/internal/handlers"
	"github.com/devyhq/devy-backend/internal/models"
	"github.com/devyhq/devy-backend/internal/services"
	"github.com/devyhq/devy-backend/internal/utils"
	"github.com/devyhq/devy-backend/pkg/logger"
)

// appServices holds the initialized services and handlers of the application.
type appServices struct {
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	locationHandler *handlers.LocationHandler
	healthHandler   *handlers.HealthHandler
	tokenCleanup    *services.TokenCleanupService
}

// bootstrap initializes database, services and handlers. Collaborators are
// wired by explicit construction so each one can be substituted in tests.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTConfig(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedReferenceData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed reference data")
	}

	db := models.GetDB()

	accounts := services.NewAccountRepository(db)
	tokens := services.NewRefreshTokenStore(db)
	issuer := services.NewTokenIssuer(&cfg.JWT)
	hasher := services.NewPasswordHasher()

	authService := services.NewAuthService(accounts, tokens, issuer, hasher)
	userService := services.NewUserService(accounts)
	locationService := services.NewLocationService(db)

	tokenCleanup := services.NewTokenCleanupService(db)
	tokenCleanup.Start()

	return &appServices{
		authHandler:     handlers.NewAuthHandler(authService, userService),
		userHandler:     handlers.NewUserHandler(userService),
		locationHandler: handlers.NewLocationHandler(locationService),
		healthHandler:   handlers.NewHealthHandler(),
		tokenCleanup:    tokenCleanup,
	}
}

// shutdown stops the background schedulers.
func (s *appServices) shutdown() {
	if s.tokenCleanup != nil {
		s.tokenCleanup.Stop()
	}
	logger.Info().Msg("schedulers stopped")
}
