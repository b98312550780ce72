package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"inventory.GO/migrations"
)

var migrateDown bool

func migrateDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return "mysql://" + dsn
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	db := os.Getenv("MYSQL_DB")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s", user, pass, host, port, db)
}

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply schema migrations (use --down to roll back one step)",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			fmt.Printf("Load migrations: %v\n", err)
			os.Exit(1)
		}
		m, err := migrate.NewWithSourceInstance("iofs", src, migrateDSN())
		if err != nil {
			fmt.Printf("Open migrator: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()

		if migrateDown {
			err = m.Steps(-1)
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Schema already up to date.")
			return
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied.")
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
	rootCmd.AddCommand(migrateCmd)
}
