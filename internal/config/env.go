package config

import "github.com/joho/godotenv"

// LoadEnvFiles loads .env and .env.local into the process environment.
// Variables that are already set keep their values; missing files are ignored.
func LoadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env", ".env.local"}
	}
	for _, file := range files {
		_ = godotenv.Load(file)
	}
}
