// Package ui is the Bubble Tea terminal front end: a login view for the OAuth
// code exchange, a searchable document gallery and a chat view with the
// summary panel. All network work runs as commands; the update loop never
// blocks.
package ui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneymong/internal/api"
	"moneymong/internal/chat"
	"moneymong/internal/config"
	"moneymong/internal/datasource"
	"moneymong/internal/domain/models"
)

type view int

const (
	viewLogin view = iota
	viewGallery
	viewChat
)

// App is the root model. It owns view switching and the messages that cross
// view boundaries; everything view-local lives in the sub-models.
type App struct {
	cfg     *config.Config
	client  *api.Client
	ds      datasource.DataSource
	chatSvc *chat.Service
	logger  *slog.Logger
	styles  *Styles

	view    view
	login   loginModel
	gallery galleryModel
	chat    chatModel

	user   *models.User
	width  int
	height int
}

func NewApp(cfg *config.Config, client *api.Client, ds datasource.DataSource, chatSvc *chat.Service, logger *slog.Logger) *App {
	styles := NewStyles()
	quiet := time.Duration(cfg.SearchDebounceMS) * time.Millisecond

	app := &App{
		cfg:     cfg,
		client:  client,
		ds:      ds,
		chatSvc: chatSvc,
		logger:  logger,
		styles:  styles,
		login:   newLoginModel(styles, client.LoginURL()),
		gallery: newGalleryModel(styles, ds, cfg.PageSize, quiet),
	}

	// Mock mode needs no session; live mode starts at login unless a stored
	// token pair exists.
	if cfg.Mode == config.ModeMock || client.HasSession() {
		app.view = viewGallery
	} else {
		app.view = viewLogin
	}
	return app
}

func (a *App) Init() tea.Cmd {
	if a.view == viewGallery {
		var cmd tea.Cmd
		a.gallery, cmd = a.gallery.load()
		// A stored token pair only proves a past login; resolve the account
		// behind it so the header shows who the session belongs to.
		if a.cfg.Mode == config.ModeLive && a.client.HasSession() {
			return tea.Batch(cmd, resolveUserCmd(a.client))
		}
		return cmd
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.gallery, cmd = a.gallery.Update(msg)
		cmds = append(cmds, cmd)
		a.chat, cmd = a.chat.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			// q quits everywhere except while typing into an input.
			if a.view == viewGallery && !a.gallery.searchFocused {
				return a, tea.Quit
			}
		case "esc":
			if a.view == viewChat {
				a.view = viewGallery
				return a, nil
			}
		case "L":
			if a.view == viewGallery && !a.gallery.searchFocused {
				return a, logoutCmd(a.client)
			}
		}

	case SessionExpiredMsg:
		a.logger.Info("session expired, returning to login")
		a.user = nil
		a.login = newLoginModel(a.styles, a.client.LoginURL())
		a.view = viewLogin
		return a, nil

	case loginSubmitMsg:
		return a, exchangeCodeCmd(a.client, msg.code)

	case authDoneMsg:
		if msg.err == nil {
			a.user = msg.user
			if msg.user != nil {
				a.logger.Info("logged in", "email", msg.user.Email)
			}
			a.view = viewGallery
			var cmd tea.Cmd
			a.gallery, cmd = a.gallery.load()
			if a.user == nil && a.cfg.Mode == config.ModeLive {
				// The exchange response may omit the user payload; resolve it
				// through the session-lookup endpoint.
				return a, tea.Batch(cmd, resolveUserCmd(a.client))
			}
			return a, cmd
		}

	case userResolvedMsg:
		if msg.err != nil {
			// A dead session surfaces through the expiry hook; anything else
			// just leaves the header anonymous.
			a.logger.Warn("failed to resolve user", "error", msg.err)
			return a, nil
		}
		a.user = msg.user
		a.logger.Info("session resolved", "email", msg.user.Email)
		return a, nil

	case logoutDoneMsg:
		if msg.err != nil {
			a.logger.Warn("logout call failed, local session cleared anyway", "error", msg.err)
		}
		a.user = nil
		a.login = newLoginModel(a.styles, a.client.LoginURL())
		a.view = viewLogin
		return a, nil

	case chatOpenedMsg:
		if msg.err != nil {
			a.gallery.errText = msg.err.Error()
			return a, nil
		}
		a.chat = newChatModel(a.styles, a.chatSvc, msg, a.cfg.S3Region)
		a.view = viewChat
		return a, nil
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewGallery:
		a.gallery, cmd = a.gallery.Update(msg)
	case viewChat:
		a.chat, cmd = a.chat.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	title := "MoneyMong · 금융 보고서 요약"
	if a.user != nil {
		title += " · " + a.user.Username
	}
	header := a.styles.Header.Render(title)

	var body string
	switch a.view {
	case viewLogin:
		body = a.login.View()
	case viewGallery:
		body = a.gallery.View()
	case viewChat:
		body = a.chat.View()
	}
	return header + "\n\n" + body
}
