package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"spendtrack/auth"
	"spendtrack/config"
	"spendtrack/handlers"
	"spendtrack/store"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(postgres.Open(cfg.DatabaseDSN))
	if err != nil {
		log.Fatal("failed to connect postgres database: ", err)
	}

	// Support a lightweight migrate command: `./spendtrack migrate`
	// It runs migrations and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := st.Migrate(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("migration completed")
		return
	}

	if cfg.AutoMigrate {
		if err := st.Migrate(); err != nil {
			log.Printf("migration warning: %v", err)
		}
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	handlers.NewServer(st, tokens, cfg.Debug).Routes(r)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
