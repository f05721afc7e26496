package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/rgusain/tarazu-api/pkg/utils"
)

// UserService handles staff account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name     string
	Role     enum.Role
	Password string
}

// UpdateUserInput represents input for updating a user
type UpdateUserInput struct {
	Name     *string
	Role     *enum.Role
	Password *string
}

// CreateUser creates a staff account. Admin accounts require a password;
// cashiers sign in by name alone.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !input.Role.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "Role must be admin or cashier"})
	}
	if input.Role == enum.RoleAdmin && input.Password == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password is required for admin accounts"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	user := &entity.User{
		Name: strings.TrimSpace(input.Name),
		Role: input.Role,
	}

	if input.Role == enum.RoleAdmin {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateUser updates a staff account. Demoting the last remaining admin
// is rejected the same way deleting them is.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && !input.Role.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "role", Message: "Role must be admin or cashier"},
		})
	}

	if input.Role != nil && user.IsAdmin() && *input.Role != enum.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name is required"},
			})
		}
		user.Name = name
	}
	if input.Role != nil {
		user.Role = *input.Role
		if user.Role != enum.RoleAdmin {
			user.PasswordHash = ""
		}
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if user.Role == enum.RoleAdmin && user.PasswordHash == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "password", Message: "Password is required for admin accounts"},
		})
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a staff account. The store must always keep at
// least one admin, so deleting the last one is rejected and the user
// list stays unchanged.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return err
		}
	}

	return s.userRepo.Delete(ctx, id)
}

// ListUsers lists all staff accounts
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) ensureNotLastAdmin(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, enum.RoleAdmin)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperror.ErrLastAdmin
	}
	return nil
}
