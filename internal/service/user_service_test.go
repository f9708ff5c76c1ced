package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 1}, nil)

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserExist)
}

func TestRegisterSuccess(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, nil)
	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "alice" && u.Nickname == "alice" && u.Password != "secret123"
	}), mock.Anything).Return(nil)

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	hash, _ := security.HashPassword("right-password")
	userRepo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&model.User{ID: 1, Username: "alice", Password: hash}, nil)

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "alice",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLoginBannedUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	userRepo.On("GetUserByUsername", mock.Anything, "alice").
		Return(&model.User{ID: 1, Username: "alice", IsBanned: true}, nil)

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "alice",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrUserBan)
}

func TestLoginByEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	hash, _ := security.HashPassword("secret123")
	userRepo.On("GetUserByEmail", mock.Anything, "alice@example.com").
		Return(&model.User{ID: 1, Username: "alice", Password: hash}, nil)
	roleRepo.On("GetRoleNamesByUserID", mock.Anything, uint64(1)).Return([]string{"USER"}, nil)

	out, err := svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "alice@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
}

func TestBanSelfRejected(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	err := svc.BanUser(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrUserBanSelf)
}

func TestBanUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	svc := NewUserService(userRepo, roleRepo)

	userRepo.On("GetUserByID", mock.Anything, uint64(2)).Return(&model.User{ID: 2}, nil)
	userRepo.On("UpdateBanned", mock.Anything, uint64(2), true).Return(nil)

	assert.NoError(t, svc.BanUser(context.Background(), 1, 2))
	userRepo.AssertExpectations(t)
}
