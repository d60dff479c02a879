package adminpanelapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "hr-intake-backend/models/db"
)

type UserView struct {
	User
	ID        string     `json:"id"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type User struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
}

func (u User) Validate() error {
	if u.Email == "" {
		return errors.New("ไม่ได้ระบุอีเมล")
	}
	return nil
}

func UserConvert(rec dbmodels.AdminUser) UserView {
	return UserView{
		User: User{
			Email:     rec.Email,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
		},
		ID:        rec.ID,
		LastLogin: &rec.LastLogin,
	}
}

type UserUpdate struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
}
