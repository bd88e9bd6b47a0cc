package main

import (
	"context"

	"github.com/blaisecz/bedtime-estimator/internal/config"
	"github.com/blaisecz/bedtime-estimator/internal/langfuse"
	"github.com/blaisecz/bedtime-estimator/internal/llm"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"go.uber.org/zap"
)

// modelLoader picks the predictor source: OpenAI, then MODEL_PATH, then the registry, then the built-in artifact.
// store may be nil.
func modelLoader(cfg *config.Config, store regression.ArtifactStore, tracer langfuse.Client, log *zap.Logger) regression.LoadFunc {
	return func(ctx context.Context) (regression.Predictor, error) {
		if cfg.ModelBackend == config.BackendOpenAI {
			prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
				BaseURL:     cfg.LangfuseBaseURL,
				PublicKey:   cfg.LangfusePublicKey,
				SecretKey:   cfg.LangfuseSecretKey,
				PromptName:  cfg.LangfusePromptName,
				PromptLabel: cfg.LangfusePromptLabel,
				CachePath:   cfg.PromptCachePath,
				Fallback:    llm.DefaultSystemPrompt,
				Logger:      log,
			})
			if err != nil {
				return nil, err
			}

			p := llm.NewSleepPredictor(cfg.OpenAIAPIKey, cfg.OpenAIBedtimeModel, prompt, tracer)
			if p == nil {
				return nil, llm.ErrOpenAIUnavailable
			}
			log.Info("model loaded", zap.String("backend", config.BackendOpenAI), zap.String("model", cfg.OpenAIBedtimeModel))
			return p, nil
		}

		switch {
		case cfg.ModelPath != "":
			artifact, err := regression.LoadArtifact(cfg.ModelPath)
			if err != nil {
				return nil, err
			}
			log.Info("model loaded", zap.String("path", cfg.ModelPath), zap.String("name", artifact.Name))
			return regression.NewLinearModel(artifact)
		case store != nil:
			return regression.LoadFromStore(ctx, store, log)
		default:
			log.Info("model loaded", zap.String("name", regression.DefaultArtifact().Name), zap.Bool("built_in", true))
			return regression.NewLinearModel(regression.DefaultArtifact())
		}
	}
}
