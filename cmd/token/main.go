// Command token mints a bearer token for the safe-location API, e.g. for referenceStore.token.
package main

import (
	"flag"
	"fmt"
	"os"

	"safezone/config"
	"safezone/internal/infra/auth"
)

func main() {
	userID := flag.String("user", "", "user id the token is issued for")
	flag.Parse()

	if err := run(*userID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(userID string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateToken(userID)
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}
