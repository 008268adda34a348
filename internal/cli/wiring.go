package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"docqa/internal/config"
	"docqa/internal/logger"
	"docqa/internal/ranker"
	"docqa/internal/service"
	"docqa/internal/source"
	"docqa/internal/store"
)

// newLogger logs to the configured file, or to fallback when none is set.
func newLogger(cfg *config.AppConfig, fallback io.Writer) (zerolog.Logger, func() error, error) {
	return logger.Open(cfg.Log.Level, cfg.Log.File, cfg.Log.Console, fallback)
}

func newService(cfg *config.AppConfig, log zerolog.Logger) (*service.QAServiceImpl, error) {
	match, err := ranker.ParseMatchPolicy(cfg.Engine.Match)
	if err != nil {
		return nil, err
	}
	loadCfg := service.LoadConfig{Segmentation: cfg.Engine.Segmentation}
	queryCfg := service.QueryConfig{
		TopK:            cfg.Engine.TopK,
		MinTokenLength:  cfg.Engine.MinTokenLength,
		KeepPunctuation: cfg.Engine.KeepPunctuation,
		Match:           match,
		Highlight:       cfg.Engine.Highlight,
		HighlightOpen:   cfg.Engine.HighlightOpen,
		HighlightClose:  cfg.Engine.HighlightClose,
		ResponseCharCap: cfg.Engine.ResponseCharCap,
		FallbackPrefix:  cfg.Engine.FallbackPrefixChars,
		NotFoundMessage: cfg.Engine.NotFoundMessage,
	}
	return service.NewQAService(store.NewMemory(), loadCfg, queryCfg, log), nil
}

func newProvider(cfg *config.AppConfig) *source.Auto {
	return source.NewAuto(time.Duration(cfg.Source.TimeoutSecs)*time.Second, cfg.Source.MaxBytes)
}
