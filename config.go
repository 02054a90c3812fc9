package main

import (
	"os"
	"strings"
)

type Config struct {
	DataDir     string
	Port        string
	CORSOrigins []string
}

func mustConfig() Config {
	cfg := Config{
		DataDir: getenv("DATA_DIR", "data"),
		Port:    getenv("PORT", "8080"),
		CORSOrigins: splitCSV(getenv("CORS_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
