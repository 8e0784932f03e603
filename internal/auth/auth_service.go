package auth

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	autherrors "go-storefront-api/internal/auth/errors"
)

const (
	bcryptCost = 12
	tokenTTL   = time.Hour * 24 * 7
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidPayload
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}
	if err != sql.ErrNoRows {
		return AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user, err := s.repo.Create(ctx, CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	})
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := s.generateToken(user.ID.String(), user.Email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// indistinguishable from a wrong password on purpose
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID.String(), user.Email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, autherrors.ErrUserNotFound
	}

	return toUserResponse(user), nil
}

func (s *service) generateToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toUserResponse(user User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}
