package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-intake-backend/lib/utils/auth-utils"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if value, ok := name.(string); ok {
			return value
		}
	}
	return ""
}
