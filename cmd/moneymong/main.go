package main

import (
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"moneymong/internal/api"
	"moneymong/internal/auth"
	"moneymong/internal/chat"
	"moneymong/internal/config"
	"moneymong/internal/datasource"
	"moneymong/internal/ui"
)

const maxLogFiles = 10

func main() {
	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	cfg := config.Load()

	// The TUI owns stdout, so structured logs go to a file.
	logFile, err := config.SetupLogFile(cfg.LogDir, maxLogFiles)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("client starting",
		"environment", cfg.Environment,
		"mode", cfg.Mode,
		"api_base_url", cfg.APIBaseURL,
	)

	tokens, err := auth.NewFileStore(cfg.TokenPath)
	if err != nil {
		log.Fatalf("Failed to open token store: %v", err)
	}
	if access := tokens.AccessToken(); access != "" {
		if exp, ok := auth.TokenExpiry(access); ok {
			logger.Info("stored session found",
				"user_id", auth.TokenSubject(access),
				"expires_at", exp,
			)
		}
	}

	client := api.New(cfg.APIBaseURL, tokens, logger)
	ds := datasource.New(cfg, client, logger)
	chatSvc := chat.NewService(ds, logger)

	app := ui.NewApp(cfg, client, ds, chatSvc, logger)
	program := tea.NewProgram(app, tea.WithAltScreen())

	// A failed token refresh anywhere in the client surfaces as a message so
	// the UI can drop back to the login view.
	client.OnSessionExpired(func() {
		program.Send(ui.SessionExpiredMsg{})
	})

	if _, err := program.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		log.Fatalf("Error: %v", err)
	}
	logger.Info("client stopped")
}
