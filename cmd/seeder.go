package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/frahmantamala/grievance-portal/internal/user"
	userPostgres "github.com/frahmantamala/grievance-portal/internal/user/postgres"
	"github.com/frahmantamala/grievance-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
	adminPhone    string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the administrator account",
	Long:  `Create the administrator account if no user with that email exists yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gdb, err := openGorm(db.DB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		svc := user.NewService(userPostgres.NewUserRepository(gdb), cfg.Security.BCryptCost, logger.LoggerWrapper())
		_, created, err := svc.EnsureAdmin(context.Background(), user.RegisterDTO{
			Name:     adminName,
			Email:    adminEmail,
			Phone:    adminPhone,
			Password: adminPassword,
		})
		if err != nil {
			log.Fatalf("failed to seed admin: %v", err)
		}

		if !created {
			fmt.Println("Admin user already exists:", adminEmail)
			return
		}
		fmt.Println("Seeded admin user:", adminEmail)
		fmt.Println("Change the default password after the first login.")
	},
}

func init() {
	seedCmd.Flags().StringVar(&adminEmail, "email", "admin@grievance.com", "admin email")
	seedCmd.Flags().StringVar(&adminPassword, "password", "admin123", "admin password")
	seedCmd.Flags().StringVar(&adminName, "name", "System Administrator", "admin display name")
	seedCmd.Flags().StringVar(&adminPhone, "phone", "0000000000", "admin phone number")
}
