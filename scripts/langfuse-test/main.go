// Script to test Langfuse connectivity: fetches the bedtime prompt and creates a test trace.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/blaisecz/bedtime-estimator/internal/langfuse"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
)

func main() {
	cfg := langfuse.Config{
		BaseURL:     getEnv("LANGFUSE_BASE_URL", "http://localhost:3001"),
		PublicKey:   os.Getenv("LANGFUSE_PUBLIC_KEY"),
		SecretKey:   os.Getenv("LANGFUSE_SECRET_KEY"),
		Environment: getEnv("LANGFUSE_ENV", "development"),
	}
	promptName := os.Getenv("LANGFUSE_PROMPT_NAME")

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.SecretKey))
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Printf("Prompt:      %s\n", orDefault(promptName, "(none)"))
	fmt.Println()

	client := langfuse.NewClient(cfg)

	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if promptName != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.BaseURL,
			PublicKey:   cfg.PublicKey,
			SecretKey:   cfg.SecretKey,
			PromptName:  promptName,
			PromptLabel: getEnv("LANGFUSE_PROMPT_LABEL", "production"),
		})
		if err != nil {
			log.Fatalf("Failed to fetch prompt: %v", err)
		}
		fmt.Printf("✓ Prompt fetched (%d chars)\n", len(prompt))
	}

	model, err := regression.NewLinearModel(regression.DefaultArtifact())
	if err != nil {
		log.Fatalf("Failed to build model: %v", err)
	}
	features := regression.Features{Wake: 7 * 3600, EstimatedSleep: 8, Coffee: 1}
	prediction, err := model.Predict(ctx, features)
	if err != nil {
		log.Fatalf("Failed to predict: %v", err)
	}

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		Name:   "test-trace",
		Input:  features,
		Output: prediction,
		Tags:   []string{"test", "manual"},
	})
	if err != nil {
		log.Fatalf("Failed to create trace: %v", err)
	}
	if err := client.Close(ctx); err != nil {
		log.Fatalf("Failed to flush trace: %v", err)
	}

	fmt.Println("✓ Test trace created successfully!")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.BaseURL, traceID)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
