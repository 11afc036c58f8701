package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/prospectfinder/backend/internal/entity"
)

type RegisterUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterUserUseCase struct {
	Repo         entity.UserRepositoryInterface
	EmailService EmailService
}

func NewRegisterUserUseCase(repo entity.UserRepositoryInterface, emailService EmailService) *RegisterUserUseCase {
	return &RegisterUserUseCase{Repo: repo, EmailService: emailService}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	if errs := validateRegisterInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password: " + err.Error()}
	}

	user := &entity.User{
		Username:     strings.ToLower(strings.TrimSpace(input.FirstName)) + strings.ToLower(strings.TrimSpace(input.LastName)),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
	}

	if err := uc.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{Code: "EMAIL_TAKEN", Message: "email is already registered"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to create user: " + err.Error()}
	}

	// Welcome mail is best effort and must never delay or fail the signup.
	if uc.EmailService != nil {
		go func(to, username string) {
			if err := uc.EmailService.SendWelcome(to, username); err != nil {
				log.Printf("welcome email to %s failed: %v", to, err)
			}
		}(user.Email, user.Username)
	}

	return user, nil
}

func validateRegisterInput(input RegisterUserInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Password == "" {
		errors = append(errors, ValidationError{"password", "is required"})
	} else if len(input.Password) < 8 {
		errors = append(errors, ValidationError{"password", "must have at least 8 characters"})
	}

	return errors
}
