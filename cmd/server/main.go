package main

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzzerolog "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/api/handler"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/api/router"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/config"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/extractor"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/llm"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/ocr"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/parser"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/processor"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "path to the configuration file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", configPath).Msg("failed to load configuration")
	}

	logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	hlog.SetLogger(hertzzerolog.From(logger.Logger))

	ctx := context.Background()
	orchestrator, err := buildPipeline(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build extraction pipeline")
	}

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	router.Register(h, handler.NewResumeHandler(orchestrator))

	logger.Info().Str("address", cfg.Server.Address).Msg("resume extraction service starting")
	h.Spin()
}

// buildPipeline assembles the orchestrator from configuration. Missing LLM
// or OCR credentials disable those tiers instead of failing startup.
func buildPipeline(ctx context.Context, cfg *config.Config) (*processor.Orchestrator, error) {
	formats, err := extractor.NewRegistry(ctx)
	if err != nil {
		return nil, err
	}

	comp := processor.Components{
		Formats:   formats,
		Heuristic: parser.NewHeuristicExtractor(),
		OCR: ocr.NewHTTPClient(cfg.OCR.APIKey,
			ocr.WithEndpoint(cfg.OCR.Endpoint),
			ocr.WithLanguage(cfg.OCR.Language),
			ocr.WithTimeout(config.GetDuration(cfg.OCR.Timeout, 20*time.Second)),
		),
	}

	if cfg.LLM.APIKey == "" {
		logger.Warn().Msg("no llm api key configured, running in heuristic-only mode")
	} else {
		timeout := config.GetDuration(cfg.LLM.Timeout, 45*time.Second)

		primaryModel, err := llm.NewOpenAIChatModel(cfg.LLM.APIKey, cfg.LLM.PrimaryModel, cfg.LLM.APIURL)
		if err != nil {
			return nil, err
		}
		comp.Primary, err = parser.NewModelExtractor(primaryModel, parser.WithModelTimeout(timeout))
		if err != nil {
			return nil, err
		}

		fallbackModel, err := llm.NewOpenAIChatModel(cfg.LLM.APIKey, cfg.LLM.FallbackModel, cfg.LLM.APIURL)
		if err != nil {
			return nil, err
		}
		comp.Fallback, err = parser.NewModelExtractor(fallbackModel, parser.WithModelTimeout(timeout))
		if err != nil {
			return nil, err
		}
	}

	return processor.New(comp, processor.Settings{
		MinTextLength: cfg.Extraction.MinTextLength,
		AcceptScore:   cfg.Extraction.AcceptScore,
	}), nil
}
