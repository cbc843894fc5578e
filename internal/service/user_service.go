package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/go-mall/config"
	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
)

// RegisterUserInput 注册参数
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     model.UserRole
}

// UserService 用户服务
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*model.User, error)
	// Login 校验口令并签发 JWT
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
	jwt  config.JWTConfig
}

func NewUserService(repo repository.UserRepository, jwtCfg config.JWTConfig) UserService {
	return &userService{repo: repo, jwt: jwtCfg}
}

func (s *userService) Register(ctx context.Context, in RegisterUserInput) (*model.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, invalidArgument("email and password are required")
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Phone:    in.Phone,
		Role:     role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", forbidden("invalid credentials")
		}
		return "", err
	}
	if !user.IsActive {
		return "", forbidden("account disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", forbidden("invalid credentials")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwt.ExpireHour) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwt.Secret))
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "user %s not found", id)
	}
	return user, nil
}
