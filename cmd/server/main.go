package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/lucasmtr/blog-platform/backend/internal/repositories"
	"github.com/lucasmtr/blog-platform/backend/internal/router"
	"github.com/lucasmtr/blog-platform/backend/pkg/config"
	"github.com/lucasmtr/blog-platform/backend/validators"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Blog platform API server",
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		createAdminCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := config.InitDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer config.CloseDB(db)

			e := echo.New()
			e.HideBanner = true
			e.Validator = validators.NewValidator()

			router.SetupMiddleware(e)
			router.SetupRoutes(e, db, cfg)

			log.Printf("Server listening on :%s", cfg.Port)
			return e.Start(":" + cfg.Port)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.InitDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer config.CloseDB(db)

			if err := router.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Println("Migrations completed.")
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Grant the admin flag to an existing user",
		Long: "Grant the admin flag to the user registered under the given email.\n" +
			"Tokens issued before the change keep their old admin claim until they expire.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.InitDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer config.CloseDB(db)

			userRepo := repositories.NewPostgresUserRepository(db)
			user, err := userRepo.GetUserByEmail(email)
			if err != nil {
				return fmt.Errorf("no user registered under %s", email)
			}

			user.IsAdmin = true
			if err := userRepo.UpdateUser(user); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			log.Printf("User %s (%s) is now an admin.", user.Username, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
