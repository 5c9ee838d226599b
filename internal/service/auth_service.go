package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cristian-diego/cavaleiros-da-biblia/internal/data"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/event"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/models"
	"github.com/cristian-diego/cavaleiros-da-biblia/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the session/profile gateway: email+password in, signed
// session token and a user id out.
type AuthService struct {
	AccountRepo *repository.AccountRepository
	Profiles    *ProfileService
	Publisher   *event.Publisher

	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(accountRepo *repository.AccountRepository, profiles *ProfileService, publisher *event.Publisher, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		AccountRepo: accountRepo,
		Profiles:    profiles,
		Publisher:   publisher,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

// Session is what a successful register/login hands back.
type Session struct {
	Token   string       `json:"token"`
	UserID  string       `json:"user_id"`
	Profile *models.User `json:"profile"`
}

// ValidateRegister checks the form fields, one message per field.
func ValidateRegister(req *models.RegisterRequest) models.FieldErrors {
	errs := models.FieldErrors{}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Email == "" {
		errs["email"] = "email is required"
	} else if !strings.Contains(req.Email, "@") {
		errs["email"] = "email is invalid"
	}
	if len(req.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if req.Name == "" {
		errs["name"] = "name is required"
	}
	if req.Avatar != "" && !data.ValidAvatar(req.Avatar) {
		errs["avatar"] = "unknown avatar"
	}
	return errs
}

// Register creates an account plus a fresh gameplay profile.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*Session, models.FieldErrors, error) {
	if errs := ValidateRegister(req); !errs.Empty() {
		return nil, errs, nil
	}

	existing, err := s.AccountRepo.FindByEmail(ctx, req.Email)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, models.FieldErrors{"email": "email already registered"}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.AccountRepo.Create(ctx, account); err != nil {
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = data.Avatars[0].ID
	}
	profile, err := s.Profiles.CreateProfile(ctx, account.ID, req.Name, avatar)
	if err != nil {
		return nil, nil, err
	}

	token, err := s.signToken(account)
	if err != nil {
		return nil, nil, err
	}

	s.Publisher.Publish(event.UserRegistered, map[string]any{"user_id": account.ID})
	return &Session{Token: token, UserID: account.ID, Profile: profile}, nil, nil
}

// Login verifies credentials and returns a session with the stored profile.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*Session, models.FieldErrors, error) {
	errs := models.FieldErrors{}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		errs["email"] = "email is required"
	}
	if req.Password == "" {
		errs["password"] = "password is required"
	}
	if !errs.Empty() {
		return nil, errs, nil
	}

	account, err := s.AccountRepo.FindByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return nil, models.FieldErrors{"email": "invalid email or password"}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, models.FieldErrors{"email": "invalid email or password"}, nil
	}

	// A missing profile is not fatal: session restore falls through to
	// onboarding on the client.
	profile, err := s.Profiles.GetProfile(ctx, account.ID)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}

	token, err := s.signToken(account)
	if err != nil {
		return nil, nil, err
	}

	s.Publisher.Publish(event.UserLoggedIn, map[string]any{"user_id": account.ID})
	return &Session{Token: token, UserID: account.ID, Profile: profile}, nil, nil
}

func (s *AuthService) signToken(account *models.Account) (string, error) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cavaleiros-service",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
		UserID: account.ID,
		Email:  account.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a session token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
