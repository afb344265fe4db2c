package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"centralkitchen/internal/entities"
)

// Service authenticates users and issues the bearer tokens the REST layer
// turns into an Actor. The ledger itself never sees credentials.
type Service struct {
	users     UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func New(users UserRepository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type actorClaims struct {
	jwt.RegisteredClaims
	Name      string `json:"name"`
	Role      string `json:"role"`
	StoreID   string `json:"store_id,omitempty"`
	StoreName string `json:"store_name,omitempty"`
}

type RegisterRequest struct {
	Name      string
	Email     string
	Password  string
	Role      entities.RoleType
	StoreID   string
	StoreName string
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*entities.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidRole(req.Role) {
		return nil, ErrInvalidRole
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		StoreID:      req.StoreID,
		StoreName:    req.StoreName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// Login verifies the credentials and returns a signed token plus the user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingRequiredFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// ParseToken validates a bearer token and reconstructs the Actor carried in
// its claims.
func (s *Service) ParseToken(tokenString string) (*entities.Actor, error) {
	claims := &actorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v: %w", token.Header["alg"], ErrInvalidToken)
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", ErrInvalidToken)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &entities.Actor{
		UserID:    claims.Subject,
		Name:      claims.Name,
		Role:      entities.RoleType(claims.Role),
		StoreID:   claims.StoreID,
		StoreName: claims.StoreName,
	}, nil
}

func (s *Service) issueToken(user *entities.User) (string, error) {
	now := time.Now()
	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Name:      user.Name,
		Role:      user.Role.String(),
		StoreID:   user.StoreID,
		StoreName: user.StoreName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
