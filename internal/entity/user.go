package entity

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CompanyProfile is the optional 1:1 post-signup questionnaire about the
// user's own company. Not to be confused with vendor Company records.
type CompanyProfile struct {
	UserID       int64     `json:"user_id"`
	CompanyName  string    `json:"company_name"`
	BusinessType string    `json:"business_type"`
	CompanySize  string    `json:"company_size"`
	Occupation   string    `json:"occupation"`
	PrimaryGoal  string    `json:"primary_goal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	SaveCompanyProfile(ctx context.Context, p *CompanyProfile) error
}
