package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"worksight.com/worksight/core"
	"worksight.com/worksight/models"
)

// Migrates a tenant schema and optionally seeds the first admin user.
func main() {
	tenant := flag.String("tenant", "", "tenant schema to migrate (empty = all)")
	adminEmail := flag.String("admin-email", "", "seed an admin user with this email")
	adminPassword := flag.String("admin-password", "", "password for the seeded admin")
	flag.Parse()

	dsn := os.Getenv("WORKSIGHT_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "WORKSIGHT_DSN not set")
		os.Exit(1)
	}

	dm, err := core.New(dsn, 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database: %v\n", err)
		os.Exit(1)
	}
	defer dm.Close()

	ctx := context.Background()

	var tenants []string
	if *tenant != "" {
		tenants = []string{*tenant}
	} else {
		tenants, err = dm.GetAllTenants(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list tenants: %v\n", err)
			os.Exit(1)
		}
	}

	for _, schema := range tenants {
		fmt.Printf("migrating %s\n", schema)
		err := dm.Exec(ctx, schema, func(db *gorm.DB) error {
			if err := core.Migrate(db); err != nil {
				return err
			}
			if *adminEmail != "" {
				return seedAdmin(db, *adminEmail, *adminPassword)
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "tenant %s: %v\n", schema, err)
			os.Exit(1)
		}
	}

	fmt.Println("done")
}

func seedAdmin(db *gorm.DB, email, password string) error {
	if password == "" {
		return fmt.Errorf("admin-password is required with admin-email")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		OrganizationID: 1,
		Email:          email,
		FullName:       "Administrator",
		PasswordHash:   string(hash),
		Role:           models.RoleAdmin,
	}).Error
}
