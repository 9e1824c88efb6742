// Command issue-token prints a signed identity token. It is used to
// bootstrap the first admin and to call the API by hand.
//
// Usage:
//
//	issue-token --username=alice --role=admin
//
// Requires AUTH_JWT_SECRET (or a config file) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/qa-moderation/internal/auth"
	"github.com/heartmarshall/qa-moderation/internal/config"
	"github.com/heartmarshall/qa-moderation/internal/domain"
)

func main() {
	username := flag.String("username", "", "username to put in the token")
	role := flag.String("role", string(domain.RoleStudent), "role to put in the token")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --username=alice [--role=admin]")
		os.Exit(1)
	}
	if !domain.Role(*role).IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	token, err := tokens.Issue(*username, domain.Role(*role))
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
