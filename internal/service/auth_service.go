package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/repository"
	"github.com/L52103/appEscritorioControl/pkg/jwt"
	"github.com/L52103/appEscritorioControl/pkg/redis"
)

// ── Auth business errors ──

var (
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
	ErrInvalidToken       = errors.New("token inválido o expirado")
)

// AuthService handles login, token refresh and logout.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenPairResponse, error)
	// Logout blacklists the token until its natural expiry.
	Logout(ctx context.Context, tokenString string) error
	Me(ctx context.Context, workerID int64) (*dto.WorkerResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	redis  *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService. redis may be nil; logout then
// degrades to a no-op on the server side (tokens expire naturally).
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, redis: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	worker, err := s.repo.Worker.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("buscar trabajador por email falló", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(worker.ID, worker.IsAdmin)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(worker.ID, worker.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Worker:       toWorkerResponse(worker),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenPairResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}

	if s.redis != nil {
		blacklisted, err := s.redis.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("consultar blacklist falló", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidToken
		}
	}

	worker, err := s.repo.Worker.GetByID(ctx, claims.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(worker.ID, worker.IsAdmin)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(worker.ID, worker.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtMgr.ParseToken(tokenString)
	if err != nil {
		return ErrInvalidToken
	}
	if s.redis == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("agregar token a blacklist falló", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, workerID int64) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return toWorkerResponse(worker), nil
}
