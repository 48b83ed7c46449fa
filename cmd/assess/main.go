package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"psybench/internal/config"
	"psybench/internal/llm"
	"psybench/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Corre una evaluación completa desde la terminal e imprime el perfil como
// JSON. No necesita Postgres ni Redis.
func main() {
	var (
		modelName   = flag.String("model", "", "display name for the assessed model (defaults to LLM_MODEL)")
		persona     = flag.String("persona", "", "optional persona the model should adopt")
		inventories = flag.String("inventories", "bigfive,mbti,disc", "comma-separated inventories to run")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	name := *modelName
	if name == "" {
		name = cfg.LLMModel
	}

	var requested []string
	for _, inv := range strings.Split(*inventories, ",") {
		if inv = strings.TrimSpace(inv); inv != "" {
			requested = append(requested, inv)
		}
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	sampler := service.NewSampler(llmClient, logger, cfg.SampleCount, cfg.Concurrency, cfg.Temperature)
	assessSvc := service.NewAssessmentService(sampler, nil, nil, logger)

	profile, err := assessSvc.Run(context.Background(), service.AssessmentRequest{
		ModelName:   name,
		Persona:     *persona,
		Inventories: requested,
	})
	if err != nil {
		logger.Fatal("assessment failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		logger.Fatal("encode profile", zap.Error(err))
	}
	fmt.Fprintln(os.Stdout, string(out))
}
