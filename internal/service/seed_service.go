package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/milsabores/bakery-api/internal/auth"
	"github.com/milsabores/bakery-api/internal/config"
	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/repository"
)

// SeedService hydrates the database at startup. Every step is
// upsert-if-missing, so repeated runs are no-ops.
type SeedService struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	logger     *zap.Logger
	bcryptCost int
	seedCfg    config.SeedConfig
}

// NewSeedService builds the service.
func NewSeedService(users repository.UserRepository, products repository.ProductRepository, logger *zap.Logger, cfg config.Config) *SeedService {
	return &SeedService{
		users:      users,
		products:   products,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
		seedCfg:    cfg.Seed,
	}
}

// Run ensures the admin account, the demo accounts, and the initial catalog
// exist.
func (s *SeedService) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedProducts(ctx)
}

func (s *SeedService) seedUsers(ctx context.Context) error {
	adminBirthdate := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	if err := s.ensureUser(ctx, "Admin Principal", s.seedCfg.AdminEmail, s.seedCfg.AdminPassword, domain.RoleAdmin, adminBirthdate); err != nil {
		return err
	}

	for _, demo := range demoUsers {
		birthdate, err := time.Parse("2006-01-02", demo.Birthdate)
		if err != nil {
			return err
		}
		if err := s.ensureUser(ctx, demo.Name, demo.Email, demo.Password, domain.RoleUser, birthdate); err != nil {
			return err
		}
	}
	return nil
}

// ensureUser creates the account when missing. The DB unique constraint
// covers the race with a concurrent registration; a duplicate insert is
// treated as already-seeded.
func (s *SeedService) ensureUser(ctx context.Context, name, email, password string, role domain.Role, birthdate time.Time) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Birthdate:    birthdate,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	s.logger.Info("seeded user", zap.String("email", email), zap.String("role", string(role)))
	return nil
}

func (s *SeedService) seedProducts(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	s.logger.Info("product catalog empty, loading initial data")
	for i := range initialProducts {
		product := initialProducts[i]
		if err := s.products.Create(ctx, &product); err != nil {
			if repository.IsUniqueViolation(err) {
				continue
			}
			return err
		}
	}
	s.logger.Info("seeded products", zap.Int("count", len(initialProducts)))
	return nil
}
