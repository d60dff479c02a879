package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("รูปแบบอีเมลไม่ถูกต้อง")
	}
	if r.Password == "" {
		return errors.New("กรุณาระบุรหัสผ่าน")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"token"`
}
