package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	MapsAPIKey  string
	MapsBaseURL string

	RestaurantAddress string
	AllowOrigin       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:          getEnv("DB_SOURCE", "cantina.db"),
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            time.Duration(24) * time.Hour,
		MapsAPIKey:        loadMapsKey(),
		MapsBaseURL:       getEnv("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api/directions/json"),
		RestaurantAddress: getEnv("RESTAURANT_ADDRESS", "13020 Livingston Rd, Naples, FL 34105"),
		AllowOrigin:       getEnv("ALLOW_ORIGIN", "*"),
	}
}

// The directions key lives in a local file (MAPS_API_KEY_FILE) read once at
// startup; MAPS_API_KEY overrides it directly.
func loadMapsKey() string {
	if v, ok := os.LookupEnv("MAPS_API_KEY"); ok {
		return strings.TrimSpace(v)
	}
	path := getEnv("MAPS_API_KEY_FILE", "gmaps_api_key.txt")
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("maps api key not loaded from %s: %v", path, err)
		return ""
	}
	return strings.TrimSpace(string(b))
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
