// Command docsift infers document outlines (title + H1-H4 headings with
// pages) from PDF files. It runs in three modes: batch over an input
// directory (default), an HTTP service (-serve), or an MCP stdio server
// (-mcp).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsift/docsift/journal"
	"github.com/docsift/docsift/langid"
	"github.com/docsift/docsift/outline"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	serveMode := flag.Bool("serve", false, "run as an HTTP service instead of batch mode")
	mcpMode := flag.Bool("mcp", false, "run as an MCP server on stdio")
	flag.Parse()

	logLevel := env("LOG_LEVEL", "info")
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	// In MCP stdio mode stdout carries the protocol; logs go to stderr.
	logOut := io.Writer(os.Stdout)
	if *mcpMode {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			slog.Error("config", "error", err)
			os.Exit(1)
		}
	}
	cfg.InputDir = env("INPUT_DIR", cfg.InputDir)
	cfg.OutputDir = env("OUTPUT_DIR", cfg.OutputDir)
	cfg.JournalDB = env("JOURNAL_DB", cfg.JournalDB)
	cfg.Listen = env("LISTEN", cfg.Listen)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var store *journal.Store
	if cfg.JournalDB != "" {
		var err error
		store, err = journal.Open(cfg.JournalDB)
		if err != nil {
			slog.Error("journal db", "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	engCfg := outline.Config{Logger: logger}
	if cfg.Language != "" {
		engCfg.Detector = langid.Fixed(cfg.Language)
	}
	eng := outline.New(engCfg)

	switch {
	case *mcpMode:
		if err := runMCP(ctx, eng); err != nil {
			slog.Error("mcp server", "error", err)
			os.Exit(1)
		}
	case *serveMode:
		runServe(ctx, eng, cfg, store)
	default:
		if err := runBatch(ctx, eng, cfg, store); err != nil {
			slog.Error("batch", "error", err)
			os.Exit(1)
		}
	}
}

// runBatch processes every .pdf under InputDir in sorted filename order and
// writes one .json per document into OutputDir. A document that cannot be
// processed is logged and skipped; already-written outputs stay in place.
// Journal failures only warn.
func runBatch(ctx context.Context, eng *outline.Engine, cfg *Config, store *journal.Store) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("mkdir output: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		res, err := eng.ExtractFile(ctx, filepath.Join(cfg.InputDir, name))
		if err != nil {
			slog.Error("document skipped", "name", name, "error", err)
			continue
		}

		outPath := filepath.Join(cfg.OutputDir, strings.TrimSuffix(name, filepath.Ext(name))+".json")
		if err := writeResult(outPath, res); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		slog.Info("document processed", "name", name, "entries", len(res.Outline), "output", outPath)

		record(ctx, store, &journal.Record{
			Name:       name,
			Title:      res.Title,
			DocType:    string(res.DocType),
			Entries:    len(res.Outline),
			DurationMS: time.Since(start).Milliseconds(),
			OutputPath: outPath,
		})
	}
	return nil
}

// writeResult serializes res with two-space indentation and no HTML
// escaping so output is stable across runs.
func writeResult(path string, res *outline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// record logs a journal entry, warning instead of failing when the journal
// is unavailable.
func record(ctx context.Context, store *journal.Store, r *journal.Record) {
	if store == nil {
		return
	}
	if err := store.Record(ctx, r); err != nil {
		slog.Warn("journal record", "name", r.Name, "error", err)
	}
}

func runServe(ctx context.Context, eng *outline.Engine, cfg *Config, store *journal.Store) {
	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Post("/v1/outline", func(w http.ResponseWriter, req *http.Request) {
		// Multipart field "file", or the raw request body as a fallback.
		var body io.Reader
		name := "upload.pdf"
		if file, hdr, err := req.FormFile("file"); err == nil {
			defer file.Close()
			body = file
			name = hdr.Filename
		} else {
			body = req.Body
		}

		tmp, err := os.CreateTemp("", "docsift-*.pdf")
		if err != nil {
			writeError(w, 500, err)
			return
		}
		defer os.Remove(tmp.Name())
		if _, err := io.Copy(tmp, body); err != nil {
			tmp.Close()
			writeError(w, 500, err)
			return
		}
		if err := tmp.Close(); err != nil {
			writeError(w, 500, err)
			return
		}

		start := time.Now()
		res, err := eng.ExtractFile(req.Context(), tmp.Name())
		if err != nil {
			writeError(w, 422, err)
			return
		}
		record(req.Context(), store, &journal.Record{
			Name:       name,
			Title:      res.Title,
			DocType:    string(res.DocType),
			Entries:    len(res.Outline),
			DurationMS: time.Since(start).Milliseconds(),
		})
		writeJSON(w, 200, res)
	})

	r.Get("/v1/journal", func(w http.ResponseWriter, req *http.Request) {
		if store == nil {
			writeJSON(w, 200, []*journal.Record{})
			return
		}
		records, err := store.Recent(req.Context(), queryInt(req, "limit", 50))
		if err != nil {
			writeError(w, 500, err)
			return
		}
		if records == nil {
			records = []*journal.Record{}
		}
		writeJSON(w, 200, records)
	})

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func runMCP(ctx context.Context, eng *outline.Engine) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "docsift",
		Version: "1.0.0",
	}, nil)
	eng.RegisterMCP(srv)
	slog.Info("MCP server starting", "transport", "stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// --- Helpers ---

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
