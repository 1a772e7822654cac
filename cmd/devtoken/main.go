// Command devtoken prints a signed access token for local testing of the API.
//
// Usage:
//
//	devtoken -user 42 [-ttl 1h]
//
// Requires AUTH_JWT_SECRET (and optionally AUTH_JWT_ISSUER) to match the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/studyset-backend/internal/auth"
)

func main() {
	userID := flag.Int64("user", 0, "user id to put into the token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET must be set and at least 32 characters long")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "studyset"
	}
	if *userID <= 0 {
		log.Fatal("-user must be a positive id")
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttl).GenerateAccessToken(*userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
