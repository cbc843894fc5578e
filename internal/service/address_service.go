package service

import (
	"context"

	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
)

// CreateAddressInput 创建地址参数
type CreateAddressInput struct {
	Street     string
	City       string
	State      string
	Complement string
	PostalCode string
}

// AddressService 地址服务。查找 + 归属校验集中在 getOwned
type AddressService interface {
	CreateAddress(ctx context.Context, in CreateAddressInput, user *model.User) (*model.Address, error)
	GetAddressByID(ctx context.Context, id string, user *model.User) (*model.Address, error)
	ListAddresses(ctx context.Context, user *model.User) ([]*model.Address, error)
	DeleteAddress(ctx context.Context, id string, user *model.User) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, in CreateAddressInput, user *model.User) (*model.Address, error) {
	addr := &model.Address{
		UserID:     user.ID,
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		Complement: in.Complement,
		PostalCode: in.PostalCode,
	}
	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *addressService) GetAddressByID(ctx context.Context, id string, user *model.User) (*model.Address, error) {
	return s.getOwned(ctx, id, user)
}

func (s *addressService) ListAddresses(ctx context.Context, user *model.User) ([]*model.Address, error) {
	return s.repo.ListByUser(ctx, user.ID)
}

func (s *addressService) DeleteAddress(ctx context.Context, id string, user *model.User) error {
	addr, err := s.getOwned(ctx, id, user)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, addr.ID)
}

func (s *addressService) getOwned(ctx context.Context, id string, user *model.User) (*model.Address, error) {
	addr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "address %s not found", id)
	}
	if addr.UserID != user.ID {
		return nil, forbidden("address %s does not belong to current user", id)
	}
	return addr, nil
}
