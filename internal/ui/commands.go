package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneymong/internal/api"
	"moneymong/internal/chat"
	"moneymong/internal/datasource"
	"moneymong/internal/domain"
	"moneymong/internal/domain/models"
)

const requestTimeout = 30 * time.Second

func debounceCmd(quiet time.Duration, seq int) tea.Cmd {
	return tea.Tick(quiet, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func fetchDocumentsCmd(ds datasource.DataSource, q models.DocumentQuery, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		page, err := ds.ListDocuments(ctx, q)
		return documentsPageMsg{seq: seq, page: page, err: err}
	}
}

func exchangeCodeCmd(client *api.Client, code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.ExchangeOAuthCode(ctx, models.OAuthCallbackRequest{Code: code})
		if err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{user: resp.User}
	}
}

func resolveUserCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, err := client.Me(ctx)
		return userResolvedMsg{user: user, err: err}
	}
}

func logoutCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return logoutDoneMsg{err: client.Logout(ctx)}
	}
}

// openChatCmd loads the summary for a document and resumes its most recent
// report_based conversation when one exists. A missing summary is not an
// error; the chat view falls back to document metadata only.
func openChatCmd(ds datasource.DataSource, doc models.Document) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := chatOpenedMsg{doc: &doc}

		sum, err := ds.GetDocumentSummary(ctx, doc.ID)
		switch {
		case err == nil:
			msg.summary = sum
		case !errors.Is(err, domain.ErrNotFound):
			msg.err = err
			return msg
		}

		convs, err := ds.ListConversations(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		for i := range convs.Items {
			c := convs.Items[i]
			if c.SessionType == models.SessionReportBased && c.PrimaryDocumentID == doc.ID {
				msg.conv = &c
				break
			}
		}
		if msg.conv != nil {
			history, err := ds.ListMessages(ctx, msg.conv.ID)
			if err != nil {
				msg.err = err
				return msg
			}
			msg.messages = history.Items
		}
		return msg
	}
}

// openGeneralChatCmd resumes the most recent general conversation, or starts
// the chat view empty so the first send creates one.
func openGeneralChatCmd(ds datasource.DataSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := chatOpenedMsg{}

		convs, err := ds.ListConversations(ctx)
		if err != nil {
			msg.err = err
			return msg
		}
		for i := len(convs.Items) - 1; i >= 0; i-- {
			if convs.Items[i].SessionType == models.SessionGeneral {
				c := convs.Items[i]
				msg.conv = &c
				break
			}
		}
		if msg.conv != nil {
			history, err := ds.ListMessages(ctx, msg.conv.ID)
			if err != nil {
				msg.err = err
				return msg
			}
			msg.messages = history.Items
		}
		return msg
	}
}

func sendMessageCmd(svc *chat.Service, opts chat.SendOptions, tentativeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := svc.Send(ctx, opts)
		return sendDoneMsg{tentativeID: tentativeID, result: result, err: err}
	}
}
