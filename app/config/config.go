package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/devasathya74/pmsrbl/app/store"
)

// Config carries the process configuration and the initialized external
// collaborators. Handlers reach them through the accessors below.
type Config struct {
	Port         string
	AllowOrigins string

	FirebaseProjectID string
	CredentialsFile   string

	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string

	Store    store.Store
	Blob     store.BlobStore
	Accounts store.Accounts
}

var AppConfig *Config

// Load reads the environment (plus an optional .env for local runs) into
// AppConfig. Collaborators are not connected yet; InitFirebase does that.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		AllowOrigins:      getEnv("ALLOW_ORIGINS", "*"),
		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
		CredentialsFile:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SupabaseURL:       os.Getenv("SUPABASE_PROJECT_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseBucket:    getEnv("SUPABASE_BUCKET", "admissions"),
	}
	AppConfig = cfg
	return cfg
}

// InitFirebase connects the Firestore client and the Firebase Auth admin
// client and wires the Supabase blob store.
func (c *Config) InitFirebase(ctx context.Context) error {
	if c.FirebaseProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is not set")
	}

	var opts []option.ClientOption
	if c.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: c.FirebaseProjectID}, opts...)
	if err != nil {
		return fmt.Errorf("init firebase app: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("init firebase auth: %w", err)
	}
	fsClient, err := firestore.NewClient(ctx, c.FirebaseProjectID, opts...)
	if err != nil {
		return fmt.Errorf("init firestore: %w", err)
	}

	c.Store = store.NewFirestoreStore(fsClient)
	c.Accounts = store.NewFirebaseAccounts(authClient)

	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL / SUPABASE_SERVICE_ROLE_KEY are not set")
	}
	c.Blob = store.NewSupabaseStorage(c.SupabaseURL, c.SupabaseKey, c.SupabaseBucket)

	log.Printf("Connected to Firestore project %s", c.FirebaseProjectID)
	return nil
}

func GetStore() store.Store { return AppConfig.Store }

func GetBlob() store.BlobStore { return AppConfig.Blob }

func GetAccounts() store.Accounts { return AppConfig.Accounts }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
