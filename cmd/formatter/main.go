// Package main provides the entry point for the JSON formatter service
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"text-processor/internal/api"
	"text-processor/internal/normalizer"
)

func main() {
	// .env is optional; the real environment wins
	_ = godotenv.Load()

	// Define command-line flags
	port := flag.Int("port", envInt("PORT", 8080), "Port to run the API server on")
	indent := flag.Int("indent", normalizer.DefaultIndent, "Indent width used in CLI mode")
	runMode := flag.String("mode", "api", "Run mode: 'api' or 'cli'")
	flag.Parse()

	// If running in API mode, start the API server
	if *runMode == "api" {
		fmt.Println("JSON Formatter & Validator")
		fmt.Println("--------------------------")

		if err := api.StartFormatterServer(*port); err != nil {
			slog.Error("failed to start API server", "error", err)
			os.Exit(1)
		}
		return
	}

	// Command-line mode: format a file and print the result
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: formatter [flags] <file_path>")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()
		return
	}

	if err := formatFile(args[0], *indent); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// formatFile formats the specified JSON file and prints it to stdout
func formatFile(filePath string, indent int) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	formatted, err := normalizer.Format(string(data), indent)
	if err != nil {
		return err
	}

	fmt.Println(formatted)
	return nil
}

// envInt reads an integer environment variable with a fallback
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
