package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"contacts-manager/backend/metrics"
	"contacts-manager/backend/models"
	"contacts-manager/backend/repositories"
	"contacts-manager/backend/system"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 5 * time.Minute

	minPasswordLength      = 8
	minPasswordUniqueChars = 4
)

// AccountService handles registration, login and password changes.
type AccountService struct {
	users      repositories.UsersRepository
	tokens     *TokenService
	now        func() time.Time
	bcryptCost int
}

func NewAccountService(users repositories.UsersRepository, tokens *TokenService) *AccountService {
	return &AccountService{users: users, tokens: tokens, now: time.Now, bcryptCost: bcrypt.DefaultCost}
}

// LoginResult is returned on successful login or registration.
type LoginResult struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	User      models.UserSummary `json:"user"`
}

// CheckPasswordPolicy enforces length, character classes and unique characters.
func CheckPasswordPolicy(password string) error {
	var problems []string
	if len(password) < minPasswordLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", minPasswordLength))
	}

	var upper, lower, digit, other bool
	unique := make(map[rune]struct{})
	for _, r := range password {
		unique[r] = struct{}{}
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			other = true
		}
	}
	if !upper {
		problems = append(problems, "an uppercase letter")
	}
	if !lower {
		problems = append(problems, "a lowercase letter")
	}
	if !digit {
		problems = append(problems, "a digit")
	}
	if !other {
		problems = append(problems, "a non-alphanumeric character")
	}
	if len(unique) < minPasswordUniqueChars {
		problems = append(problems, fmt.Sprintf("at least %d unique characters", minPasswordUniqueChars))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: needs %s", ErrWeakPassword, strings.Join(problems, ", "))
	}
	return nil
}

// Register creates an account and signs the new user in.
func (s *AccountService) Register(ctx context.Context, req *models.RegisterRequest) (*LoginResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request", ErrNullArgument)
	}
	if err := ValidateModel(req); err != nil {
		return nil, err
	}
	if err := CheckPasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := models.RoleUser
	if req.UserType == models.UserTypeAdmin {
		role = models.RoleAdmin
	}

	user, err := s.users.AddUser(ctx, &models.User{
		Email:      email,
		PersonName: req.PersonName,
		Phone:      req.Phone,
		Password:   string(hashed),
		Role:       role,
	})
	if errors.Is(err, repositories.ErrConflict) {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	metrics.UsersRegistered.Inc()
	if user.IsAdmin() {
		system.Warn("Admin account registered: %s", user.Email)
	} else {
		system.Info("User registered: %s", user.Email)
	}
	return s.signIn(user)
}

// Login checks credentials. Five consecutive failures lock the account for
// five minutes.
func (s *AccountService) Login(ctx context.Context, req *models.LoginRequest) (*LoginResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request", ErrNullArgument)
	}
	if err := ValidateModel(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		metrics.Logins.WithLabelValues("failure").Inc()
		system.Warn("Failed login attempt for unknown email: %s", req.Email)
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if user.IsLocked(now) {
		metrics.Logins.WithLabelValues("locked").Inc()
		minutes := int(user.LockedUntil.Sub(now).Minutes()) + 1
		return nil, fmt.Errorf("%w: try again in %d minutes", ErrAccountLocked, minutes)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		user.FailedAttempts++
		user.LastFailedAttempt = &now
		if user.FailedAttempts >= maxFailedAttempts {
			until := now.Add(lockoutDuration)
			user.LockedUntil = &until
		}
		if err := s.users.UpdateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("record failed login: %w", err)
		}

		metrics.Logins.WithLabelValues("failure").Inc()
		system.Warn("Failed login attempt for user: %s (attempt %d)", user.Email, user.FailedAttempts)
		if user.LockedUntil != nil {
			return nil, fmt.Errorf("%w: locked for %s", ErrInvalidCredentials, lockoutDuration)
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedAttempts != 0 || user.LockedUntil != nil {
		user.FailedAttempts = 0
		user.LockedUntil = nil
		if err := s.users.UpdateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("reset failed logins: %w", err)
		}
	}

	metrics.Logins.WithLabelValues("success").Inc()
	system.Info("User logged in: %s", user.Email)
	return s.signIn(user)
}

func (s *AccountService) signIn(user *models.User) (*LoginResult, error) {
	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expires, User: models.ToUserSummary(*user)}, nil
}

// Logout revokes the presented token.
func (s *AccountService) Logout(ctx context.Context, claims *Claims) error {
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	system.Info("User logged out: %s", claims.Email)
	return nil
}

// IsEmailAvailable reports whether no account uses email.
func (s *AccountService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, fmt.Errorf("%w: email", ErrNullArgument)
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return user == nil, nil
}

// ChangePassword replaces the password after checking the old one.
func (s *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request", ErrNullArgument)
	}
	if err := ValidateModel(req); err != nil {
		return err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return fmt.Errorf("%w: incorrect old password", ErrInvalidCredentials)
	}
	if err := CheckPasswordPolicy(req.NewPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)
	user.FailedAttempts = 0
	user.LockedUntil = nil
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("save password: %w", err)
	}

	system.Info("User changed password: %s", user.Email)
	return nil
}

// SyncUserGauge sets the registered-users gauge from the users table and
// returns the count.
func (s *AccountService) SyncUserGauge(ctx context.Context) (int64, error) {
	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	metrics.UsersRegistered.Set(float64(n))
	return n, nil
}

// ListUsers returns every account, oldest first.
func (s *AccountService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, models.ToUserSummary(u))
	}
	return out, nil
}
