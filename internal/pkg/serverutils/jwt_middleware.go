package serverutils

import (
	"os"

	"codekickstart-be/internal/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const identityLocalKey = "identity"

// JwtMiddleware rejects requests without a valid bearer token.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	userId, ok := parseUserId(tokenStr)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	ctx.Locals("user_id", userId.String())
	ctx.Locals(identityLocalKey, auth.Authenticated(userId))
	return ctx.Next()
}

// OptionalJwtMiddleware resolves the caller identity without requiring one.
// Requests with no token (or a bad one) proceed as anonymous; reads behind
// this middleware coerce anonymous callers to empty/false results.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	identity := auth.Anonymous()

	authHeader := ctx.Get("Authorization")
	if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
		if userId, ok := parseUserId(authHeader[7:]); ok {
			identity = auth.Authenticated(userId)
			ctx.Locals("user_id", userId.String())
		}
	}

	ctx.Locals(identityLocalKey, identity)
	return ctx.Next()
}

// IdentityFromCtx returns the identity resolved by the middleware chain,
// or Anonymous when the route carries no auth middleware at all.
func IdentityFromCtx(ctx *fiber.Ctx) auth.Identity {
	if identity, ok := ctx.Locals(identityLocalKey).(auth.Identity); ok {
		return identity
	}
	return auth.Anonymous()
}

func parseUserId(tokenStr string) (uuid.UUID, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default_secret"
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}

	idStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}

	userId, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userId, true
}
