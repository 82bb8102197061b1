package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	raglite "github.com/sqltuner/rag-lite"
)

type server struct {
	echo *echo.Echo

	retriever raglite.Retriever
	budget    raglite.Budget
	chat      raglite.LLM

	logger *slog.Logger
}

func newServer(retriever raglite.Retriever, budget raglite.Budget, chat raglite.LLM, logger *slog.Logger) *server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	s := &server{
		echo:      e,
		retriever: retriever,
		budget:    budget,
		chat:      chat,
		logger:    logger.With(slog.String("module", "server")),
	}

	e.POST("/optimize-sql", s.handleOptimizeSQL)
	e.GET("/healthz", s.handleHealthz)

	return s
}

func (s *server) Start(listen string) error {
	if err := s.echo.Start(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// handleOptimizeSQL enriches the posted payload with retrieved context. The
// payload is decoded in full before enrichment and only the fully enriched
// result is ever written back, so a failure anywhere aborts the request
// without a half-enriched response.
func (s *server) handleOptimizeSQL(c echo.Context) error {
	logger := s.logger.With(slog.String("requestID", c.Response().Header().Get(echo.HeaderXRequestID)))

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	payload, err := decodePayload(body)
	if err != nil {
		logger.Warn("Rejecting malformed payload", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}

	budget := s.budget
	if raw := c.QueryParam("max_context_tokens"); raw != "" {
		maxTokens, err := strconv.Atoi(raw)
		if err != nil || maxTokens <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_context_tokens")
		}
		budget.MaxContextTokens = maxTokens
	}

	enriched, err := raglite.Enrich(payload, s.retriever, budget, logger)
	if err != nil {
		logger.Error("Enrichment failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "enrichment failed")
	}

	resp := map[string]any{
		"enriched_payload": payload,
		"enriched":         enriched,
	}

	if c.QueryParam("complete") == "true" {
		if s.chat == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "no llm provider configured")
		}
		completion, err := s.chat.Chat(c.Request().Context(), payload.Messages)
		if err != nil {
			logger.Error("Completion relay failed", "error", err)
			return echo.NewHTTPError(http.StatusBadGateway, "completion failed")
		}
		resp["completion"] = completion
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *server) handleHealthz(c echo.Context) error {
	if s.retriever.KB == nil {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	}

	chunks, err := s.retriever.KB.Chunks()
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "knowledge base unavailable")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":         "ok",
		"kb_chunks":      len(chunks),
		"kb_fingerprint": strconv.FormatUint(s.retriever.KB.Fingerprint(), 16),
	})
}

// decodePayload tries a strict decode first, then falls back to repairing
// the JSON. Payloads in this pipeline are often assembled by LLM tooling
// and arrive with trailing commas or unquoted keys.
func decodePayload(body []byte) (*raglite.Payload, error) {
	var payload raglite.Payload
	if err := json.Unmarshal(body, &payload); err == nil {
		return &payload, nil
	}

	repaired, err := jsonrepair.RepairJSON(string(body))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
