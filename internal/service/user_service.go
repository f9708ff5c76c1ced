package service

import (
	"MarketMind/internal/api/dto"
	"MarketMind/internal/model"
	"MarketMind/internal/pkg/redis"
	"MarketMind/internal/pkg/security"
	"MarketMind/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error
	BanUser(ctx context.Context, operatorID, id uint64) error
	UnBanUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err)
		return UnExpectedError
	}
	if findUser == nil {
		findUser, err = s.userRepo.GetUserByEmail(ctx, regDTO.Email)
		if err != nil {
			log.ErrorContext(ctx, "get user error", "err", err)
			return UnExpectedError
		}
	}
	if findUser != nil {
		return ErrUserExist
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		log.ErrorContext(ctx, "copy register dto error", "err", err)
		return UnExpectedError
	}
	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		log.ErrorContext(ctx, "hash password error", "err", err)
		return UnExpectedError
	}
	user.Password = passwordHash
	if user.Nickname == "" {
		user.Nickname = user.Username
	}

	// 默认普通用户角色
	roles := []*model.UserRole{{RoleID: 1}}
	if err = s.userRepo.CreateUser(ctx, user, roles); err != nil {
		if isDuplicateError(err) {
			return ErrUserExist
		}
		log.ErrorContext(ctx, "create user error", "err", err)
		return UnExpectedError
	}
	return nil
}

// Login 支持用户名或邮箱登录
func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	var (
		user *model.User
		err  error
	)
	if strings.Contains(credentialDTO.Username, "@") {
		user, err = s.userRepo.GetUserByEmail(ctx, credentialDTO.Username)
	} else {
		user, err = s.userRepo.GetUserByUsername(ctx, credentialDTO.Username)
	}
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBanned {
		return nil, ErrUserBan
	}
	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roleNames, err := s.roleRepo.GetRoleNamesByUserID(ctx, user.ID)
	if err != nil {
		log.ErrorContext(ctx, "get user roles error", "err", err, "user_id", user.ID)
		return nil, UnExpectedError
	}
	token, err := security.GenerateToken(user.ID, roleNames)
	if err != nil {
		log.ErrorContext(ctx, "generate token error", "err", err, "user_id", user.ID)
		return nil, UnExpectedError
	}
	return &dto.LoginResultDTO{Token: token, User: toUserDTO(user)}, nil
}

// Logout 把 token 签名放进 Redis 黑名单直到过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	if err = redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime); err != nil {
		log.ErrorContext(ctx, "set token blacklist error", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err, "user_id", id)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err, "user_id", id)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(changeDTO.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		log.ErrorContext(ctx, "hash password error", "err", err)
		return UnExpectedError
	}
	user.Password = passwordHash
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "update user error", "err", err, "user_id", id)
		return UnExpectedError
	}
	return nil
}

func (s *UserServiceImpl) BanUser(ctx context.Context, operatorID, id uint64) error {
	if operatorID == id {
		return ErrUserBanSelf
	}
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err, "user_id", id)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = s.userRepo.UpdateBanned(ctx, id, true); err != nil {
		log.ErrorContext(ctx, "ban user error", "err", err, "user_id", id)
		return UnExpectedError
	}
	return nil
}

func (s *UserServiceImpl) UnBanUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "get user error", "err", err, "user_id", id)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = s.userRepo.UpdateBanned(ctx, id, false); err != nil {
		log.ErrorContext(ctx, "unban user error", "err", err, "user_id", id)
		return UnExpectedError
	}
	return nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	out.CreatedAt = user.CreatedAt.Format("2006-01-02 15:04:05")
	return out
}
