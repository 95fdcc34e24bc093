package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds everything the handlers need: the Mongo client plus the
// environment knobs. It is built once in main and passed down.
type Config struct {
	Port            string
	DBURI           string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	AllowedOrigins  []string
	Environment     string // "production" toggles cross-site cookie attributes

	MongoClient *mongo.Client
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "5000"),
		DBURI:           getEnv("DB_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "healthHub"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		AllowedOrigins:  splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}
}

// Connect dials Mongo, verifies the connection with a ping and makes
// sure the schema-level indexes exist. The client lives for the whole
// process; main owns Disconnect.
func (cfg *Config) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DBURI))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	if err := ensureIndexes(ctx, client.Database(cfg.DBName)); err != nil {
		return err
	}

	cfg.MongoClient = client
	return nil
}

// ensureIndexes backs the handler-level uniqueness checks with store
// constraints. Subscriber emails stay unique even when two concurrent
// subscribes for the same address both pass the existence check.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("newsletters").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (cfg *Config) Disconnect(ctx context.Context) error {
	if cfg.MongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return cfg.MongoClient.Disconnect(ctx)
}

// Production reports whether cross-site cookie attributes apply.
func (cfg *Config) Production() bool {
	return cfg.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
