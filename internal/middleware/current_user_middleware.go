package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"github.com/hiresage/recruitai/internal/util"
)

const userLocalsKey = "currentUser"

// CurrentUser resolves the acting user from the X-User-ID header and stores it
// in the request locals. Identity is trusted from the gateway; this service
// does not verify credentials itself.
func CurrentUser(userRepo *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-User-ID")
		if raw == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing X-User-ID header",
			})
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid X-User-ID header",
			}, err)
		}
		user, err := userRepo.FindByID(id)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Unknown user",
			}, err)
		}
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// RequireRole gates a route group to the given roles.
func RequireRole(roles ...model.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if user == nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing user context",
			})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: "Insufficient role for this operation",
		})
	}
}

// UserFromCtx returns the user stored by CurrentUser, or nil.
func UserFromCtx(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userLocalsKey).(*model.User)
	return user
}
