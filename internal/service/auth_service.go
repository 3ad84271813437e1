package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/repository"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/jwt"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid NIP or password")
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService is the authentication business interface.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, nip string) (*dto.WorkerResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	nip := shift.NormalizeNIP(req.NIP)

	worker, err := s.repo.Worker.GetByNIP(ctx, nip)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("query worker failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(worker.NIP, worker.Role, worker.Name, worker.Category, req.RememberMe)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil // blacklist unavailable, token expires naturally
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && blacklisted {
			return nil, ErrInvalidToken
		}
	}

	// Re-read the worker so a role change takes effect on refresh.
	worker, err := s.repo.Worker.GetByNIP(ctx, claims.NIP)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.tokenPair(worker.NIP, worker.Role, worker.Name, worker.Category, claims.RememberMe)
}

func (s *authService) GetProfile(ctx context.Context, nip string) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByNIP(ctx, shift.NormalizeNIP(nip))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &dto.WorkerResponse{
		NIP:      worker.NIP,
		Name:     worker.Name,
		Category: worker.Category,
		Role:     worker.Role,
	}, nil
}

func (s *authService) tokenPair(nip, role, name, category string, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(nip, role)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(nip, role, rememberMe)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Worker: dto.WorkerResponse{
			NIP:      nip,
			Name:     name,
			Category: category,
			Role:     role,
		},
	}, nil
}
