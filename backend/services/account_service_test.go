package services

import (
	"context"
	"testing"
	"time"

	"contacts-manager/backend/metrics"
	"contacts-manager/backend/models"
	"contacts-manager/backend/repositories"
	"contacts-manager/backend/repositories/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const goodPassword = "Str0ng#Pass"

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{goodPassword, true},
		{"Ab1!", false},            // too short
		{"alllower1!", false},      // no upper
		{"ALLUPPER1!", false},      // no lower
		{"NoDigits!!", false},      // no digit
		{"NoSymbols123", false},    // no symbol
		{"Aa1!Aa1!Aa1!", true},     // exactly 4 unique
		{"Ééé1!ééé", true},         // non-ASCII letters count
		{"aaaaAAAA11!!", true},     // 4 unique
	}
	for _, tt := range tests {
		err := CheckPasswordPolicy(tt.password)
		if tt.ok {
			assert.NoError(t, err, tt.password)
		} else {
			assert.ErrorIs(t, err, ErrWeakPassword, tt.password)
		}
	}
}

type AccountServiceSuite struct {
	suite.Suite
	ctx      context.Context
	accounts *AccountService
	tokens   *TokenService
	users    *repositories.UsersGorm
	now      time.Time
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Now()
	s.users = repositories.NewUsersRepository(newTestDB(s.T()))
	s.tokens = NewTokenService(testSecret, time.Hour, NewMemoryRevocationList())
	s.accounts = NewAccountService(s.users, s.tokens)
	s.accounts.bcryptCost = bcrypt.MinCost
	s.accounts.now = func() time.Time { return s.now }
}

func registerRequest(email string) *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:           email,
		PersonName:      "Jane Doe",
		Phone:           "+1 555 0100",
		Password:        goodPassword,
		ConfirmPassword: goodPassword,
	}
}

func (s *AccountServiceSuite) TestRegister() {
	res, err := s.accounts.Register(s.ctx, registerRequest("jane@example.com"))
	s.Require().NoError(err)
	s.NotEmpty(res.Token)
	s.Equal(models.RoleUser, res.User.Role)

	claims, err := s.tokens.Parse(s.ctx, res.Token)
	s.Require().NoError(err)
	s.Equal(res.User.ID.String(), claims.Subject)

	stored, err := s.users.GetUserByEmail(s.ctx, "jane@example.com")
	s.Require().NoError(err)
	s.NotEqual(goodPassword, stored.Password, "password is hashed")

	s.Run("email taken ignoring case", func() {
		_, err := s.accounts.Register(s.ctx, registerRequest("JANE@example.com"))
		s.ErrorIs(err, ErrEmailTaken)
	})

	s.Run("admin user type", func() {
		req := registerRequest("boss@example.com")
		req.UserType = models.UserTypeAdmin
		res, err := s.accounts.Register(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(models.RoleAdmin, res.User.Role)
	})

	s.Run("weak password", func() {
		req := registerRequest("weak@example.com")
		req.Password, req.ConfirmPassword = "password", "password"
		_, err := s.accounts.Register(s.ctx, req)
		s.ErrorIs(err, ErrWeakPassword)
	})

	s.Run("mismatched confirmation", func() {
		req := registerRequest("typo@example.com")
		req.ConfirmPassword = goodPassword + "x"
		_, err := s.accounts.Register(s.ctx, req)
		s.ErrorIs(err, ErrValidation)
	})
}

func (s *AccountServiceSuite) TestLogin() {
	_, err := s.accounts.Register(s.ctx, registerRequest("jane@example.com"))
	s.Require().NoError(err)

	res, err := s.accounts.Login(s.ctx, &models.LoginRequest{Email: "jane@example.com", Password: goodPassword})
	s.Require().NoError(err)
	s.NotEmpty(res.Token)

	_, err = s.accounts.Login(s.ctx, &models.LoginRequest{Email: "nobody@example.com", Password: goodPassword})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AccountServiceSuite) TestLockoutAfterFiveFailures() {
	_, err := s.accounts.Register(s.ctx, registerRequest("jane@example.com"))
	s.Require().NoError(err)

	wrong := &models.LoginRequest{Email: "jane@example.com", Password: "Wrong#Pass1"}
	right := &models.LoginRequest{Email: "jane@example.com", Password: goodPassword}

	for i := 0; i < maxFailedAttempts; i++ {
		_, err := s.accounts.Login(s.ctx, wrong)
		s.Require().ErrorIs(err, ErrInvalidCredentials, "attempt %d", i+1)
	}

	_, err = s.accounts.Login(s.ctx, right)
	s.ErrorIs(err, ErrAccountLocked)

	s.now = s.now.Add(lockoutDuration + time.Second)
	_, err = s.accounts.Login(s.ctx, right)
	s.Require().NoError(err)

	user, err := s.users.GetUserByEmail(s.ctx, "jane@example.com")
	s.Require().NoError(err)
	s.Zero(user.FailedAttempts)
	s.Nil(user.LockedUntil)
}

func (s *AccountServiceSuite) TestChangePassword() {
	res, err := s.accounts.Register(s.ctx, registerRequest("jane@example.com"))
	s.Require().NoError(err)
	id := res.User.ID

	err = s.accounts.ChangePassword(s.ctx, id, &models.ChangePasswordRequest{OldPassword: "Wrong#Pass1", NewPassword: "N3w#Password"})
	s.ErrorIs(err, ErrInvalidCredentials)

	err = s.accounts.ChangePassword(s.ctx, id, &models.ChangePasswordRequest{OldPassword: goodPassword, NewPassword: "weak"})
	s.ErrorIs(err, ErrWeakPassword)

	s.Require().NoError(s.accounts.ChangePassword(s.ctx, id, &models.ChangePasswordRequest{OldPassword: goodPassword, NewPassword: "N3w#Password"}))

	_, err = s.accounts.Login(s.ctx, &models.LoginRequest{Email: "jane@example.com", Password: "N3w#Password"})
	s.NoError(err)
}

func (s *AccountServiceSuite) TestLogoutRevokesToken() {
	res, err := s.accounts.Register(s.ctx, registerRequest("jane@example.com"))
	s.Require().NoError(err)

	claims, err := s.tokens.Parse(s.ctx, res.Token)
	s.Require().NoError(err)
	s.Require().NoError(s.accounts.Logout(s.ctx, claims))

	_, err = s.tokens.Parse(s.ctx, res.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AccountServiceSuite) TestIsEmailAvailableAndListUsers() {
	_, err := s.accounts.Register(s.ctx, registerRequest("jane@example.com"))
	s.Require().NoError(err)

	free, err := s.accounts.IsEmailAvailable(s.ctx, "jane@example.com")
	s.Require().NoError(err)
	s.False(free)

	free, err = s.accounts.IsEmailAvailable(s.ctx, "john@example.com")
	s.Require().NoError(err)
	s.True(free)

	_, err = s.accounts.IsEmailAvailable(s.ctx, " ")
	s.ErrorIs(err, ErrNullArgument)

	users, err := s.accounts.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("Jane Doe", users[0].PersonName)
}

func TestAccountService_NilRequests(t *testing.T) {
	svc := &AccountService{}
	_, err := svc.Register(context.Background(), nil)
	require.ErrorIs(t, err, ErrNullArgument)
	_, err = svc.Login(context.Background(), nil)
	require.ErrorIs(t, err, ErrNullArgument)
}

func (s *AccountServiceSuite) TestSyncUserGauge() {
	for _, email := range []string{"jane@example.com", "john@example.com"} {
		_, err := s.accounts.Register(s.ctx, registerRequest(email))
		s.Require().NoError(err)
	}

	n, err := s.accounts.SyncUserGauge(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, n)
	s.Equal(2.0, testutil.ToFloat64(metrics.UsersRegistered))

	admin := registerRequest("boss@example.com")
	admin.UserType = models.UserTypeAdmin
	_, err = s.accounts.Register(s.ctx, admin)
	s.Require().NoError(err)
	s.Equal(3.0, testutil.ToFloat64(metrics.UsersRegistered))
}

func TestRegister_ConcurrentDuplicateIsEmailTaken(t *testing.T) {
	users := mocks.NewMockUsersRepository(gomock.NewController(t))
	users.EXPECT().GetUserByEmail(gomock.Any(), "jane@example.com").Return(nil, nil)
	users.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrConflict)

	svc := NewAccountService(users, NewTokenService(testSecret, time.Hour, NewMemoryRevocationList()))
	svc.bcryptCost = bcrypt.MinCost

	_, err := svc.Register(context.Background(), registerRequest("jane@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}
