package service

import (
	"context"

	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
)

type IUserService interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID string, patch *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// 帳號的建立與驗證在上游身分中心，這裡只管理檔案資料
type UserService struct {
	userRepo db.IUserRepository
}

func NewUserService(userRepo db.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// UpdateUser 部分更新，零值欄位保留原值
func (s *UserService) UpdateUser(ctx context.Context, userID string, patch *model.User) (*model.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.UserName != "" {
		user.UserName = patch.UserName
	}
	if patch.UserEmail != "" {
		user.UserEmail = patch.UserEmail
	}
	if patch.UserPhone != "" {
		user.UserPhone = patch.UserPhone
	}
	if patch.UserAddress != "" {
		user.UserAddress = patch.UserAddress
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.HardDeleteUser(ctx, userID)
}

var _ IUserService = (*UserService)(nil)
