package serverutils

import (
	"ai-comicstory-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const principalKey = "principal"

// Principal is the caller identity resolved once per request by JwtMiddleware.
type Principal struct {
	userId uuid.UUID
}

func NewPrincipal(userId uuid.UUID) Principal {
	return Principal{userId: userId}
}

func (p Principal) UserId() uuid.UUID {
	return p.userId
}

// CurrentPrincipal returns ErrUnauthorized when the route was reached without a resolved identity.
func CurrentPrincipal(ctx *fiber.Ctx) (Principal, error) {
	p, ok := ctx.Locals(principalKey).(Principal)
	if !ok || p.userId == uuid.Nil {
		return Principal{}, apperror.New(apperror.ErrUnauthorized, "Unauthorized")
	}
	return p, nil
}
