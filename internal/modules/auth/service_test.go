package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rectificadora/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "admin@taller.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@taller.com",
		PasswordHash: hashFor(t, "secreto123"),
		Role:         domain.RoleAdmin,
	}, nil)
	jwtSvc.On("GenerateToken", int64(1), "admin").Return("fake-jwt-token", nil)

	svc := NewService(userRepo, jwtSvc)
	result, err := svc.Login(context.Background(), LoginRequest{Email: "admin@taller.com", Password: "secreto123"})

	assert.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
	userRepo.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
}

func TestService_Login_NormalizesEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "admin@taller.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@taller.com",
		PasswordHash: hashFor(t, "secreto123"),
		Role:         domain.RoleAdmin,
	}, nil)
	jwtSvc.On("GenerateToken", int64(1), "admin").Return("tok", nil)

	svc := NewService(userRepo, jwtSvc)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "  Admin@Taller.com ", Password: "secreto123"})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "admin@taller.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@taller.com",
		PasswordHash: hashFor(t, "secreto123"),
		Role:         domain.RoleAdmin,
	}, nil)

	svc := NewService(userRepo, jwtSvc)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@taller.com", Password: "incorrecta"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwtSvc.AssertNotCalled(t, "GenerateToken")
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "nadie@taller.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(userRepo, jwtSvc)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "nadie@taller.com", Password: "da-igual"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetCurrentUser_StripsHash(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID:           7,
		Email:        "tecnico@taller.com",
		PasswordHash: "some-hash",
		Role:         domain.RoleTecnico,
	}, nil)

	svc := NewService(userRepo, jwtSvc)
	user, err := svc.GetCurrentUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, domain.RoleTecnico, user.Role)
}
