package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/corpdesk/company-backend-go/internal/config"
	"github.com/corpdesk/company-backend-go/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Println("Error setting dialect:", err)
		os.Exit(1)
	}

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		fmt.Println("Usage: migrate [up|down|status]")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("Migration failed:", err)
		os.Exit(1)
	}
}
