package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/models"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: addadmin -email <email> -password <password> [-name <name>]")
		os.Exit(1)
	}

	config.Load()
	ctx := context.Background()
	if err := config.AppConfig.InitFirebase(ctx); err != nil {
		fmt.Printf("Failed to initialize Firebase: %v\n", err)
		os.Exit(1)
	}

	uid, err := config.GetAccounts().CreateAccount(ctx, *email, *password)
	if err != nil {
		fmt.Printf("Error creating account: %v\n", err)
		os.Exit(1)
	}

	identity := &models.Identity{
		Email:     *email,
		Name:      *name,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	doc, err := models.ToDoc(identity)
	if err != nil {
		fmt.Printf("Error encoding identity: %v\n", err)
		os.Exit(1)
	}
	if err := config.GetStore().Set(ctx, database.UsersCollection, uid, doc); err != nil {
		fmt.Printf("Error saving role record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", *name, *email)
}
