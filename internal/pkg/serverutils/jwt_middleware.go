package serverutils

import (
	"strings"

	"ai-comicstory-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JwtMiddleware verifies the bearer token and stores the caller's Principal in Locals.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if secret == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return apperror.New(apperror.ErrUnauthorized, "Unauthorized")
		}
		tokenStr := strings.TrimSpace(authHeader[len("Bearer "):])

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return apperror.New(apperror.ErrUnauthorized, "Unauthorized")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperror.New(apperror.ErrUnauthorized, "Unauthorized")
		}

		rawUserId, _ := claims["user_id"].(string)
		userId, err := uuid.Parse(rawUserId)
		if err != nil || userId == uuid.Nil {
			return apperror.New(apperror.ErrUnauthorized, "Unauthorized")
		}

		ctx.Locals(principalKey, NewPrincipal(userId))
		return ctx.Next()
	}
}
