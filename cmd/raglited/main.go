// Command raglited serves the SQL optimization payload enrichment API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	raglite "github.com/sqltuner/rag-lite"
	"github.com/sqltuner/rag-lite/kb"
	"github.com/sqltuner/rag-lite/llm"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"
)

type config struct {
	Listen string `yaml:"listen"`

	KnowledgeBasePath string `yaml:"knowledge_base_path"`
	ChunkSize         int    `yaml:"chunk_size"`
	ChunkOverlap      int    `yaml:"chunk_overlap"`

	MaxPayloadSnippets int `yaml:"max_payload_snippets"`
	MaxKBSnippets      int `yaml:"max_kb_snippets"`

	MaxContextTokens  int  `yaml:"max_context_tokens"`
	CharsPerToken     int  `yaml:"chars_per_token"`
	PreciseTokenCount bool `yaml:"precise_token_count"`

	LogLevel string `yaml:"log_level"`

	LLM llmConfig `yaml:"llm"`
}

type llmConfig struct {
	Provider string         `yaml:"provider"`
	APIKey   string         `yaml:"api_key"`
	Host     string         `yaml:"host"`
	Model    string         `yaml:"model"`
	Params   llm.Parameters `yaml:"params"`
}

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	base := &kb.Base{
		Path:    cfg.KnowledgeBasePath,
		Chunker: newChunker(cfg),
		Logger:  logger,
	}
	if err := base.Preload(); err != nil {
		logger.Error("Failed to preload knowledge base", "error", err)
		os.Exit(1)
	}

	retriever := raglite.Retriever{
		KB:                 base,
		MaxPayloadSnippets: cfg.MaxPayloadSnippets,
		MaxKBSnippets:      cfg.MaxKBSnippets,
	}

	budget := raglite.Budget{
		MaxContextTokens: cfg.MaxContextTokens,
		CharsPerToken:    cfg.CharsPerToken,
	}
	if cfg.PreciseTokenCount {
		counter, err := raglite.TiktokenCounter()
		if err != nil {
			logger.Error("Failed to initialize token counter", "error", err)
			os.Exit(1)
		}
		budget.CountTokens = counter
	}

	chat, err := newChat(cfg.LLM, logger)
	if err != nil {
		logger.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	srv := newServer(retriever, budget, chat, logger)

	listen := cfg.Listen
	if listen == "" {
		listen = ":8080"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("Starting server", "listen", listen)
		if err := srv.Start(listen); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &cfg, nil
}

func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func newChunker(cfg *config) kb.Chunker {
	if strings.HasSuffix(strings.ToLower(cfg.KnowledgeBasePath), ".md") {
		return kb.Markdown{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap}
	}
	return kb.Paragraph{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap}
}

func newChat(cfg llmConfig, logger *slog.Logger) (raglite.LLM, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, nil
	case "openai":
		return llm.NewOpenAI(cfg.APIKey, cfg.Model, cfg.Params, logger), nil
	case "ollama":
		return llm.NewOllama(cfg.Host, cfg.Model, cfg.Params, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
