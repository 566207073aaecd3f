package main

import (
	"flag"
	"fmt"
	"os"

	"worksight.com/worksight/security"
)

// Issues a dashboard token for local testing against a running API.
func main() {
	id := flag.Int("id", 1, "user id")
	orgID := flag.Int("org", 1, "organization id")
	email := flag.String("email", "admin@worksight.local", "user email")
	role := flag.String("role", "admin", "role (admin, hr, employee)")
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("WORKSIGHT_SIGNING_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "WORKSIGHT_SIGNING_SECRET not set")
		os.Exit(1)
	}

	token, err := security.CreateIdentityToken(&security.WorkSightIdentity{
		Id:             *id,
		OrganizationId: *orgID,
		Email:          *email,
		Role:           *role,
	}, secret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
