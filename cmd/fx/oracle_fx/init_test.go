package oracle_fx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"trip-router/internal/infra"
	"trip-router/internal/services"
)

func TestProvideOrderAdvisor_DisabledWithoutKey(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &infra.Config{Oracle: infra.OracleConfig{Provider: infra.ProviderGemini, RequestTimeout: time.Second}}

	advisor, err := ProvideOrderAdvisor(lc, cfg, zap.NewNop())

	require.NoError(t, err)
	assert.IsType(t, services.DisabledOrderAdvisor{}, advisor)
}

func TestProvideOrderAdvisor_DisabledByConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &infra.Config{Oracle: infra.OracleConfig{Provider: infra.ProviderNone, APIKey: "ignored"}}

	advisor, err := ProvideOrderAdvisor(lc, cfg, zap.NewNop())

	require.NoError(t, err)
	assert.IsType(t, services.DisabledOrderAdvisor{}, advisor)
}

func TestProvideOrderAdvisor_OpenAI(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &infra.Config{Oracle: infra.OracleConfig{Provider: infra.ProviderOpenAI, APIKey: "sk-test", ModelName: "gpt-4o-mini"}}

	advisor, err := ProvideOrderAdvisor(lc, cfg, zap.NewNop())

	require.NoError(t, err)
	assert.IsType(t, &services.LLMOrderAdvisor{}, advisor)
	lc.RequireStart().RequireStop()
}
