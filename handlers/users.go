package handlers

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
	"github.com/Madhav-Gupta-28/catalog-backend-go/repository"
	"github.com/Madhav-Gupta-28/catalog-backend-go/utils"
)

type UserHandler struct {
	users  repository.UserRepository
	tokens *utils.TokenManager
}

func NewUserHandler(users repository.UserRepository, tokens *utils.TokenManager) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// SignUp registers a regular (non-admin) account.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	user := models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	}
	if err := h.users.Create(c.Request().Context(), &user); err != nil {
		return err
	}

	log.Ctx(c.Request().Context()).Info().Str("component", "SignUp").Str("username", user.Username).Msg("user registered")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"status":  "Registration Successful!",
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.FindByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return errs.ErrInvalidCredentials
	}

	token, err := h.tokens.GenerateJWT(user.ID.Hex())
	if err != nil {
		return errors.Wrap(err, "generate token")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"status":  "You are successfully logged in!",
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
