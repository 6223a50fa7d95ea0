package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/db"
	"github.com/terraincognita07/fitsense/internal/models"
	"github.com/terraincognita07/fitsense/internal/security"
	"gorm.io/gorm"
)

// RunIssueTokenCommand prints a bearer token for the user with email,
// creating the account first when it does not exist yet.
func RunIssueTokenCommand(dbPath string, secret string, email string, ttl time.Duration, out io.Writer) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	ctx := context.Background()
	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(ctx, normalizedEmail)
	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Email: normalizedEmail, CreatedAt: time.Now().UTC()}
		if err := users.Create(ctx, &user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		created = true
	case err != nil:
		return fmt.Errorf("load user: %w", err)
	}

	token, err := security.IssueAuthToken([]byte(secret), user.ID, ttl, time.Now())
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	if created {
		fmt.Fprintf(out, "Created user %s (id %d)\n", user.Email, user.ID)
	}
	fmt.Fprintf(out, "Token for user %d, valid for %s:\n%s\n", user.ID, ttl, token)
	return nil
}

func RunGenerateSecretCommand(out io.Writer) error {
	secret, err := security.GenerateSecretKey()
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}
	fmt.Fprintln(out, secret)
	return nil
}

func closeDatabase(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
