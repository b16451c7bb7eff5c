// Command ratingeval 은 별점 예측 프롬프트 전략들을 라벨이 달린 리뷰 CSV 로 비교한다.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"review-desk/cmd/api/httpclient"
	"review-desk/cmd/api/llm"
	"review-desk/cmd/api/prompts"
	"review-desk/cmd/internal/logger"
	"review-desk/cmd/ratingeval/quota"
	"review-desk/config"
)

type Config struct {
	DataPath string
	Samples  int
	Seed     uint64
	// PerMinute 는 분당 최대 호출 수, MaxCalls 는 실행 전체의 호출 상한이다. 0 은 제한 없음.
	PerMinute int
	MaxCalls  int
	Verbose   bool
}

func defaultConfig() Config {
	return Config{
		DataPath:  "data/yelp.csv",
		Samples:   200,
		Seed:      42,
		PerMinute: 60,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Path to CSV with text and stars columns")
	fs.IntVar(&cfg.Samples, "n", cfg.Samples, "Number of reviews to sample")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Sampling seed")
	fs.IntVar(&cfg.PerMinute, "rpm", cfg.PerMinute, "Max model calls per minute (0 disables pacing)")
	fs.IntVar(&cfg.MaxCalls, "max-calls", cfg.MaxCalls, "Stop calling the model after this many calls (0 means no cap)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Print every prediction")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Samples <= 0 {
		return Config{}, fmt.Errorf("-n must be positive, got %d", cfg.Samples)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	config.InitApp()
	appCfg := config.GetConfig()
	logger.Init(appCfg.Logging.Level)
	if appCfg.LLM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "missing GEMINI_API_KEY")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := os.Open(cfg.DataPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("open -data: %w", err).Error())
		os.Exit(2)
	}
	all, err := LoadSamples(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	samples := SampleN(all, cfg.Samples, cfg.Seed)

	client, err := llm.NewClient(ctx, llm.Config{
		APIKey:     appCfg.LLM.APIKey,
		Model:      appCfg.LLM.ModelName,
		Timeout:    appCfg.LLM.Timeout(),
		BaseURL:    appCfg.LLM.BaseURL,
		HTTPClient: httpclient.New(httpclient.Config{Timeout: appCfg.LLM.Timeout() + 5*time.Second}),
		Limiter:    quota.NewLimiter(cfg.PerMinute, cfg.MaxCalls),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	eval := &Evaluator{Generator: client, Strategies: prompts.Strategies()}
	reports, results, err := eval.Run(ctx, samples)
	if err != nil {
		logger.Log.Warnf("evaluation interrupted: %v", err)
	}
	if cfg.Verbose {
		WriteResults(os.Stdout, results)
		fmt.Fprintln(os.Stdout)
	}
	WriteReport(os.Stdout, reports)
}
