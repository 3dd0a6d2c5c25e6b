package main

import (
	"errors"
	"flag"
	"log"

	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/database"

	"gorm.io/gorm"
)

// Seeds an admin account directly, bypassing the registration endpoint.
// Useful for first-time bootstrap on a fresh database.
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Admin{})

	adminRepo := repository.NewAdminRepo(db)

	if _, err := adminRepo.FindByUsername(*username); err == nil {
		log.Fatalf("admin %q already exists", *username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to check username: %v", err)
	}

	admin := &model.Admin{Username: *username}
	if err := admin.SetPassword(*password); err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := adminRepo.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin %q created with id %s", admin.Username, admin.ID)
}
