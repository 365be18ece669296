package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/khoahotran/portfolio-api/pkg/auth"
)

func main() {
	fmt.Println("adding admin into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (username, email, password_hash, is_staff, is_active)
		VALUES ($1, $2, $3, TRUE, TRUE)
		ON CONFLICT (username) DO UPDATE SET password_hash = $3, email = $2, is_staff = TRUE, is_active = TRUE
	`
	_, err = pool.Exec(context.Background(), query, username, email, hash)
	if err != nil {
		log.Fatalf("cannot add admin: %v", err)
	}

	fmt.Printf("added or updated admin '%s' successfully!\n", username)
}
