package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"spendtrack/store"

	"gorm.io/driver/postgres"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: go run ./cmd/createuser <username> <email> <password>")
		os.Exit(2)
	}
	username, email, password := os.Args[1], os.Args[2], os.Args[3]

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	st, err := store.Open(postgres.Open(dsn))
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := st.Migrate(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	user, err := st.CreateUser(username, email, password)
	if errors.Is(err, store.ErrDuplicateIdentity) {
		fmt.Printf("user %s already exists\n", username)
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%d\n", username, user.ID)
}
