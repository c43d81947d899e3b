// Package main provides the entry point for the markdown converter service
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"text-processor/internal/api"
	"text-processor/internal/converter"
	"text-processor/internal/model"
	"text-processor/internal/util"
)

func main() {
	// .env is optional; the real environment wins
	_ = godotenv.Load()

	// Define command-line flags
	port := flag.Int("port", envInt("PORT", 8080), "Port to run the API server on")
	outputDir := flag.String("output", "./output", "Directory to save converted files in CLI mode")
	format := flag.String("format", "html", "Output format used in CLI mode: 'html' or 'pdf'")
	runMode := flag.String("mode", "api", "Run mode: 'api' or 'cli'")
	flag.Parse()

	// Create the manager with default renderers
	manager := converter.CreateDefaultManager()

	// If running in API mode, start the API server
	if *runMode == "api" {
		fmt.Println("Markdown to HTML/PDF Converter")
		fmt.Println("--------------------------")

		if err := api.StartConverterServer(*port, manager); err != nil {
			slog.Error("failed to start API server", "error", err)
			os.Exit(1)
		}
		return
	}

	// Command-line mode: convert a markdown file on disk
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: converter [flags] <file_path>")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()
		return
	}

	if err := processFile(args[0], model.OutputFormat(*format), manager, *outputDir); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// processFile converts the specified markdown file to the requested format
func processFile(filePath string, format model.OutputFormat, manager *converter.Manager, outputDir string) error {
	if !format.Valid() {
		return fmt.Errorf("format must be 'html' or 'pdf', got %q", format)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if strings.TrimSpace(string(content)) == "" {
		return fmt.Errorf("file is empty: %s", filePath)
	}

	detector := util.NewTextDetector()
	if !detector.IsText(content) {
		return fmt.Errorf("file is not valid UTF-8 text: %s", filePath)
	}
	if !detector.IsMarkdown(content) {
		slog.Warn("file does not look like markdown, converting anyway", "file", filePath)
	}

	// The filename without its extension becomes the title
	document := model.NewDocument(filepath.Base(filePath), "", content)

	result, err := manager.Convert(document, format)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	// Create the output directory if it doesn't exist
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	outputPath := filepath.Join(outputDir, result.Filename)
	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Converted %s to %s\n", filePath, outputPath)
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
