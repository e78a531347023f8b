package cmd

import (
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"trading-journal/config"
)

func getDSN(dbConfig config.Database) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.DBName,
		dbConfig.SSLMode)
}

// migrator is the slice of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Steps(n int) error
}

// applyMigrations runs the requested direction and returns the success
// message to print, only once the migration actually succeeded.
func applyMigrations(m migrator, direction string) (string, error) {
	var err error
	var message string
	switch direction {
	case "up":
		err = m.Up()
		message = "Applied migrations successfully."
	case "down":
		err = m.Steps(-1)
		message = "Reverted last migration successfully."
	default:
		return "", fmt.Errorf("unknown migration direction %q", direction)
	}

	if err != nil && err != migrate.ErrNoChange {
		return "", err
	}
	return message, nil
}

func runMigrations(direction string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	m, err := migrate.New("file://migrations", getDSN(cfg.DB))
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	message, err := applyMigrations(m, direction)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	fmt.Println(message)

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("Migration source error on close: %v\n", srcErr)
	}
	if dbErr != nil {
		log.Printf("Migration database error on close: %v\n", dbErr)
	}
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migration",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("down")
	},
}

var migrateCmd = &cobra.Command{
	Use: "migrate",
}

func init() {
	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)
}
