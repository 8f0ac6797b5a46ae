// config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDBName    string
	AuthURL        string
	RabbitURL      string
	MPAccessToken  string
	MPBaseURL      string
	CheckoutReturn string
	XPPerPurchase  int
	Port           string
}

func Load() *Config {
	// .env es opcional: en docker las variables vienen del entorno
	_ = godotenv.Load()

	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://host.docker.internal:27017"),
		MongoDBName:    getEnv("MONGO_DB_NAME", "aventura_gamer_db"),
		AuthURL:        getEnv("AUTH_SERVICE_URL", "http://host.docker.internal:3000"),
		RabbitURL:      getEnv("RABBIT_URL", "amqp://host.docker.internal"),
		MPAccessToken:  getEnv("MP_ACCESS_TOKEN", ""),
		MPBaseURL:      getEnv("MP_BASE_URL", "https://api.mercadopago.com"),
		CheckoutReturn: getEnv("CHECKOUT_RETURN_URL", "http://localhost:5173/perfil"),
		XPPerPurchase:  getEnvInt("XP_PER_PURCHASE", 50),
		Port:           getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
