package authapimodels

import (
	"strings"
	"time"
	"workvera-backend/models"
	dbmodels "workvera-backend/models/db"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type RegisterRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"` // seeker or employer
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&r.Name, validation.Length(0, 255)),
		validation.Field(&r.Role, validation.By(func(interface{}) error {
			return r.Role.Validate()
		})),
	)
}

func (r RegisterRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

type MeView struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	RoleName  string          `json:"role_name"`
	IsActive  bool            `json:"is_active"`
	LastLogin *time.Time      `json:"last_login,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func MeConvert(rec dbmodels.User) MeView {
	return MeView{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		Role:      rec.Role,
		RoleName:  rec.Role.ToHuman(),
		IsActive:  rec.IsActive,
		LastLogin: rec.LastLogin,
		CreatedAt: rec.CreatedAt,
	}
}

type PermissionsView struct {
	Role        models.UserRole                         `json:"role"`
	Permissions map[models.Module][]models.Permission `json:"permissions"`
}
