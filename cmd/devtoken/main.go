package main

// Small CLI tool that signs a bearer token for local development,
// standing in for the external identity provider.

import (
	"alcyxob/fitness-tracker/internal/auth"
	"alcyxob/fitness-tracker/internal/config"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

func main() {
	subject := flag.String("subject", "", "subject (user id) to put in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to jwt.expiration from config")
	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "Error: -subject is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret must be set (JWT_SECRET)")
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.JWT.Expiration
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	token, err := auth.IssueToken(cfg.JWT.Secret, cfg.JWT.Issuer, *subject, lifetime)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
