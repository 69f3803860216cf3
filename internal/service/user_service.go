package service

import (
	"errors"
	"fmt"

	"Club_Manager/internal/model"
	"Club_Manager/internal/pkg"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"
	"Club_Manager/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     *mysql.UserRepository
	rSession *redis.SessionRepository
}

func NewUserService() *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: mysql.DB},
		rSession: &redis.SessionRepository{},
	}
}

// Register 注册即登录，角色固定 member
func (s *UserService) Register(name, email, password string) (*pkg.Pair, *model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidParams)
	}
	if len(password) < 6 {
		return nil, nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidParams)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     model.RoleMember,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	token, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

func (s *UserService) Login(email, password string) (*pkg.Pair, *model.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

// issueTokens 生成一对 token，并把 access 写进 redis（单点登录）
func (s *UserService) issueTokens(user *model.User) (*pkg.Pair, error) {
	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.rSession.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	return s.rSession.DeleteUserToken(usrID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	token, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(token.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.rSession.AddUserToken(claims.UserID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) List(actor policy.Actor) ([]model.User, error) {
	if !policy.CanModerateUsers(actor) {
		return nil, ErrAccessDenied
	}
	return s.repo.List()
}

func (s *UserService) UpdateRole(actor policy.Actor, userID uint64, role string) error {
	if !policy.CanModerateUsers(actor) {
		return ErrAccessDenied
	}
	if !model.ValidRole(role) {
		return fmt.Errorf("%w: invalid role", ErrInvalidParams)
	}
	if _, err := s.repo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.UpdateRole(userID, role)
}
