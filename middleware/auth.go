package middleware

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
	"github.com/Madhav-Gupta-28/catalog-backend-go/utils"
)

const userContextKey = "user"

type tokenValidator interface {
	ValidateJWT(tokenString string) (*utils.Claims, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Gate holds the two access predicates applied in front of mutating routes:
// VerifyUser (authenticated) and VerifyAdmin (authenticated admin).
type Gate struct {
	tokens tokenValidator
	users  userFinder
}

func NewGate(tokens tokenValidator, users userFinder) *Gate {
	return &Gate{tokens: tokens, users: users}
}

func (g *Gate) VerifyUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errs.Unauthorized("Unauthorized")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return errs.Unauthorized("Unauthorized")
		}

		claims, err := g.tokens.ValidateJWT(tokenParts[1])
		if err != nil {
			log.Ctx(c.Request().Context()).Debug().Err(err).Str("component", "VerifyUser").Msg("token rejected")
			return errs.Unauthorized("Unauthorized")
		}

		user, err := g.users.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return errors.Wrap(err, "load token user")
		}
		if user == nil {
			return errs.Unauthorized("Unauthorized")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// VerifyAdmin must run after VerifyUser.
func (g *Gate) VerifyAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.Admin {
			return errs.ErrNotAdmin
		}
		return next(c)
	}
}

// CurrentUser returns the user set by VerifyUser, or nil on public routes.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
