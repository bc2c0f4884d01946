// Команда createsuperuser создает привилегированного пользователя.
// Использование:
//
//	CONFIG_PATH=config/config.yaml createsuperuser -email root@example.com -first-name Root -password 'Passw0rd!'
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/invtrack/inventtrack/internal/config"
	"github.com/invtrack/inventtrack/internal/lib/validate"
	authservice "github.com/invtrack/inventtrack/internal/services/auth"
	"github.com/invtrack/inventtrack/internal/storage"
)

func main() {
	email := flag.String("email", "", "email of the new superuser")
	firstName := flag.String("first-name", "", "first name of the new superuser")
	lastName := flag.String("last-name", "", "last name of the new superuser (optional)")
	password := flag.String("password", "", "password of the new superuser")
	flag.Parse()

	if *email == "" || *firstName == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !validate.Email(*email) {
		log.Fatalf("invalid email format: %s", *email)
	}
	if !validate.Password(*password) {
		log.Fatal("password must be at least 8 characters with an uppercase letter, a digit and a punctuation mark")
	}

	cfg := config.MustLoad()
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.DB.Close()

	svc := authservice.New(db, nil)

	var last *string
	if *lastName != "" {
		last = lastName
	}
	user, err := svc.CreateSuperuser(context.Background(), *email, *firstName, last, *password)
	if err != nil {
		log.Fatalf("create superuser error: %v", err)
	}
	fmt.Printf("superuser %s created with id %d\n", user.Email, user.ID)
}
