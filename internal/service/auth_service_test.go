package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/L52103/appEscritorioControl/config"
	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/model"
	"github.com/L52103/appEscritorioControl/internal/repository"
	"github.com/L52103/appEscritorioControl/pkg/jwt"
)

func setupAuthService(t *testing.T) (AuthService, *repository.Repository, *jwt.Manager) {
	t.Helper()
	repo := newMockRepository()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "secreto-de-pruebas-largo",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	svc := NewAuthService(repo, jwtMgr, nil, zap.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	worker := &model.Worker{
		FirstName:    "Ana",
		LastName:     "Soto",
		RUT:          "11.111.111-1",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := repo.Worker.Create(context.Background(), worker); err != nil {
		t.Fatalf("crear trabajador: %v", err)
	}
	return svc, repo, jwtMgr
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, jwtMgr := setupAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "clave-segura"})
	if err != nil {
		t.Fatalf("Login debió tener éxito: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("se esperaba un par de tokens")
	}
	if resp.Worker == nil || resp.Worker.Email != "ana@example.com" {
		t.Errorf("worker en respuesta = %+v", resp.Worker)
	}

	claims, err := jwtMgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("access token inválido: %v", err)
	}
	if claims.TokenType != "access" || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("se esperaba ErrInvalidCredentials, fue: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nadie@example.com", Password: "clave-segura"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("se esperaba ErrInvalidCredentials, fue: %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc, _, jwtMgr := setupAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "clave-segura"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh debió tener éxito: %v", err)
	}
	if _, err := jwtMgr.ParseToken(refreshed.AccessToken); err != nil {
		t.Errorf("nuevo access token inválido: %v", err)
	}

	// An access token is not accepted as a refresh token.
	_, err = svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: login.AccessToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("se esperaba ErrInvalidToken, fue: %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	resp, err := svc.Me(context.Background(), 1)
	if err != nil {
		t.Fatalf("Me debió tener éxito: %v", err)
	}
	if resp.FirstName != "Ana" || resp.RUT != "11.111.111-1" {
		t.Errorf("respuesta = %+v", resp)
	}

	if _, err := svc.Me(context.Background(), 99); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("se esperaba ErrWorkerNotFound, fue: %v", err)
	}
}
