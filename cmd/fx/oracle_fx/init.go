package oracle_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"trip-router/internal/infra"
	"trip-router/internal/services"
	"trip-router/pkg/utils"
)

var Module = fx.Provide(ProvideOrderAdvisor)

// ProvideOrderAdvisor picks the completion backend from config. A missing API
// key or ORACLE_PROVIDER=none yields an advisor that always declines, so large
// routes use the local heuristic.
func ProvideOrderAdvisor(lc fx.Lifecycle, cfg *infra.Config, log *zap.Logger) (services.OrderAdvisor, error) {
	oc := cfg.Oracle

	if oc.Provider == infra.ProviderNone {
		log.Info("route oracle disabled by configuration")
		return services.DisabledOrderAdvisor{Reason: "disabled by configuration"}, nil
	}
	if oc.APIKey == "" {
		log.Warn("route oracle API key missing, large routes will use the local heuristic",
			zap.String("provider", oc.Provider))
		return services.DisabledOrderAdvisor{Reason: fmt.Sprintf("%s API key not configured", oc.Provider)}, nil
	}

	client, err := newCompletionClient(oc)
	if err != nil {
		return nil, err
	}

	log.Info("route oracle ready",
		zap.String("provider", oc.Provider),
		zap.String("model", oc.ModelName),
		zap.Duration("timeout", oc.RequestTimeout))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return services.NewLLMOrderAdvisor(client), nil
}

func newCompletionClient(oc infra.OracleConfig) (utils.CompletionClient, error) {
	switch oc.Provider {
	case infra.ProviderOpenAI:
		return utils.NewOpenAICompletionClient(oc.APIKey, oc.ModelName, oc.RequestTimeout), nil
	case infra.ProviderGemini:
		client, err := utils.NewGeminiCompletionClient(oc.APIKey, oc.ModelName, oc.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", oc.Provider)
	}
}
