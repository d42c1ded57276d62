package main

import (
	"context"
	"flag"
	"os"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Madhav-Gupta-28/catalog-backend-go/config"
	"github.com/Madhav-Gupta-28/catalog-backend-go/database"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
	"github.com/Madhav-Gupta-28/catalog-backend-go/repository"
	"github.com/Madhav-Gupta-28/catalog-backend-go/utils"
)

func main() {
	var username, password string
	flag.StringVar(&username, "username", "", "admin username")
	flag.StringVar(&password, "password", "", "password for a new account (ignored when promoting an existing one)")
	flag.Parse()

	utils.SetupLogger("info", true)

	if username == "" {
		log.Error().Msg("-username is required")
		os.Exit(2)
	}
	if err := run(username, password); err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("create admin")
	}
}

func run(username, password string) error {
	cfg, err := config.LoadMongoDB()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := database.ConnectDB(ctx, *cfg)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	users := repository.NewMongoDBUserRepository(db, cfg.Timeout)
	created, err := ensureAdmin(ctx, users, username, password)
	if err != nil {
		return err
	}
	log.Info().Str("username", username).Bool("created", created).Msg("admin ready")
	return nil
}

// ensureAdmin promotes username to admin, creating the account first when it does not exist.
func ensureAdmin(ctx context.Context, users repository.UserRepository, username, password string) (bool, error) {
	existing, err := users.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, users.SetAdmin(ctx, existing.ID, true)
	}

	if len(password) < 6 {
		return false, errors.New("password must be at least 6 characters")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, errors.Wrap(err, "hash password")
	}

	user := models.User{Username: username, Password: string(hashedPassword), Admin: true}
	if err := users.Create(ctx, &user); err != nil {
		return false, err
	}
	return true, nil
}
