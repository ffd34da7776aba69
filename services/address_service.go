package services

import (
	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
)

type AddressService struct {
	userRepo *repository.UserRepository
	delivery *DeliveryService
}

func NewAddressService(userRepo *repository.UserRepository, delivery *DeliveryService) *AddressService {
	return &AddressService{userRepo: userRepo, delivery: delivery}
}

// Update saves the user's delivery address after checking it sits inside the
// delivery radius.
func (s *AddressService) Update(userID uint, addr *entity.Address) error {
	if err := s.delivery.ValidateAddress(addr.OneLine()); err != nil {
		return err
	}
	return s.userRepo.SaveAddress(userID, addr)
}
