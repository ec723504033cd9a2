// Command promote sets an operator's role by email, typically to make the
// first account an admin.
//
//	promote -email ops@example.com [-role admin|operator]
//
// Database settings come from the same DATABASE_* variables (and .env) the
// server reads.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/incident-desk/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/incident-desk/internal/adapter/postgres/user"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("promote failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("promote", flag.ContinueOnError)
	email := fs.String("email", "", "email of the account to update")
	roleName := fs.String("role", domain.UserRoleAdmin.String(), "role to assign: admin or operator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role, err := parseArgs(*email, *roleName)
	if err != nil {
		fs.Usage()
		return err
	}

	dbCfg, err := postgresConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	user, err := userrepo.New(pool).UpdateRoleByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)), role)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no account with email %q", *email)
	}
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	slog.Info("role updated", slog.String("email", user.Email), slog.String("role", user.Role.String()))
	return nil
}

func parseArgs(email, roleName string) (domain.UserRole, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("-email is required")
	}
	role := domain.UserRole(strings.ToLower(roleName))
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", roleName)
	}
	return role, nil
}
