package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrEmailTaken rejects registration with an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

type UserService interface {
	Register(req dto.RegisterUserRequest) (*dto.UserResponse, error)
	GetUser(id uint) (*dto.UserResponse, error)
	GetAllUsers() ([]dto.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Admin:     req.Admin,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("creating user failed")
		return nil, err
	}
	var resp dto.UserResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *userService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.UserResponse
	copier.Copy(&resp, &users)
	return resp, nil
}
