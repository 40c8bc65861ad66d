package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/code-surya/nomad/internal/constants"
	apperrors "github.com/code-surya/nomad/internal/errors"
	model "github.com/code-surya/nomad/internal/models"
	repository "github.com/code-surya/nomad/internal/repositories"
)

// AuthService is the identity provider: it registers users, checks
// credentials and turns them into signed bearer tokens, and resolves a
// token back into a principal.
type AuthService struct {
	users      *repository.UserRepository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(users *repository.UserRepository, secret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Signup(ctx context.Context, email, password, role string) (string, *model.User, error) {
	parsedRole, ok := constants.ParseRole(role)
	if !ok {
		return "", nil, apperrors.Validation("role must be either creator or worker")
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.createToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.createToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken resolves a bearer token into the principal it was issued for.
// Expired or tampered tokens come back as ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (model.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return model.Principal{}, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Principal{}, apperrors.ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	if userID == "" || roleStr == "" {
		return model.Principal{}, apperrors.ErrInvalidToken
	}

	return model.Principal{
		ID:    userID,
		Email: email,
		Role:  constants.Role(roleStr),
	}, nil
}

func (s *AuthService) createToken(user *model.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"userId": user.ID,
			"email":  user.Email,
			"role":   string(user.Role),
			"exp":    time.Now().Add(s.tokenTTL).Unix(),
		})

	return token.SignedString(s.secret)
}
