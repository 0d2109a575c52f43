package service

import (
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type UserService struct {
	userRepo repository.Users
}

func NewUserService(userRepo repository.Users) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all registered users. The password hash stays on the struct
// for internal callers but is excluded from the JSON projection by tag.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}
