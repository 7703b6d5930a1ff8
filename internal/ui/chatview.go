package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneymong/internal/chat"
	"moneymong/internal/config"
	"moneymong/internal/domain/models"
	"moneymong/internal/pdfview"
	"moneymong/internal/summary"
)

// chatModel renders one conversation next to the document's summary panel.
// Sends are optimistic: the message appears immediately with a temporary id
// and is confirmed or rolled back when the server answers.
type chatModel struct {
	styles *Styles
	svc    *chat.Service

	doc      *models.Document
	fields   summary.SummaryFields
	hasSum   bool
	company  string
	keywords []string
	srcURL   string
	conv     *models.Conversation
	thread   *chat.Thread

	input   string
	sending bool
	errText string
	width   int
}

func newChatModel(styles *Styles, svc *chat.Service, opened chatOpenedMsg, s3Region string) chatModel {
	m := chatModel{
		styles: styles,
		svc:    svc,
		doc:    opened.doc,
		conv:   opened.conv,
	}
	if opened.summary != nil {
		m.fields = summary.Fields(opened.summary)
		m.company = summary.MainCompany(opened.summary.Entities)
		m.keywords = summary.Keywords(opened.summary.Entities)
		m.hasSum = true
	}
	if opened.doc != nil && opened.doc.FilePath != "" {
		m.srcURL = pdfview.ResolveSourceURL(opened.doc.FilePath, s3Region)
	}
	convID := ""
	if opened.conv != nil {
		convID = opened.conv.ID
	}
	m.thread = chat.NewThread(convID, opened.messages)
	return m
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sendDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.thread.Rollback(msg.tentativeID)
			m.errText = "send failed: " + msg.err.Error()
			return m, nil
		}
		if msg.result == nil {
			m.thread.Rollback(msg.tentativeID)
			return m, nil
		}
		if msg.result.Conversation != nil {
			m.conv = msg.result.Conversation
			m.thread.SetConversationID(m.conv.ID)
		}
		m.thread.Confirm(msg.tentativeID, msg.result.Messages)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m chatModel) submit() (chatModel, tea.Cmd) {
	content := strings.TrimSpace(m.input)
	if content == "" || m.sending {
		return m, nil
	}
	m.input = ""
	m.errText = ""
	m.sending = true

	tentativeID := m.thread.AppendTentative(content)
	opts := chat.SendOptions{Content: content, ConversationID: m.thread.ConversationID()}
	if opts.ConversationID == "" && m.doc != nil {
		opts.DocumentID = m.doc.ID
	}
	return m, sendMessageCmd(m.svc, opts, tentativeID)
}

func (m chatModel) View() string {
	threadWidth := m.width * 3 / 5
	if threadWidth < 40 {
		threadWidth = 40
	}
	panelWidth := m.width - threadWidth - 2
	if panelWidth < 24 {
		panelWidth = 24
	}

	body := m.renderThread(threadWidth)
	if m.doc != nil {
		panel := m.styles.SummaryPanel.Width(panelWidth).Render(m.renderSummary())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	var b strings.Builder
	b.WriteString(body + "\n")
	b.WriteString(m.styles.SearchActive.Width(threadWidth).Render("질문: "+m.input) + "\n")
	if m.sending {
		b.WriteString(m.styles.Subtle.Render("sending...") + "\n")
	}
	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText) + "\n")
	}
	b.WriteString(m.styles.Footer.Render("enter send · esc back to gallery · q quit"))
	return b.String()
}

func (m chatModel) renderThread(width int) string {
	var b strings.Builder
	if m.doc != nil {
		b.WriteString(m.styles.Title.Render(m.doc.Title) + "\n")
		if m.srcURL != "" {
			b.WriteString(m.styles.Subtle.Render(m.srcURL) + "\n")
		}
		b.WriteString("\n")
	} else {
		title := "일반 대화"
		if m.conv != nil && m.conv.Title != "" {
			title = m.conv.Title
		}
		b.WriteString(m.styles.Title.Render(title) + "\n\n")
	}

	msgs := m.thread.Messages()
	if len(msgs) == 0 {
		prompt := "궁금한 내용을 질문해 보세요."
		if m.doc != nil {
			prompt = "이 보고서에 대해 질문해 보세요."
		}
		b.WriteString(m.styles.Subtle.Render(prompt) + "\n")
	}
	for _, msg := range msgs {
		b.WriteString(m.renderMessage(msg, width) + "\n")
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m chatModel) renderMessage(msg models.Message, width int) string {
	bubbleWidth := width - 4
	switch {
	case chat.IsTentative(msg.ID):
		return m.styles.TentativeBubble.Width(bubbleWidth).Render(msg.Content)
	case msg.Role == models.RoleUser:
		return m.styles.UserBubble.Width(bubbleWidth).Render(msg.Content)
	default:
		out := m.styles.AssistantBubble.Width(bubbleWidth).Render(msg.Content)
		hints := msg.FollowUpQuestions
		if len(hints) > config.MaxFollowUpQuestions {
			hints = hints[:config.MaxFollowUpQuestions]
		}
		for i, q := range hints {
			out += "\n" + m.styles.FollowUp.Render(fmt.Sprintf("  %d. %s", i+1, q))
		}
		return out
	}
}

func (m chatModel) renderSummary() string {
	var b strings.Builder
	b.WriteString(m.styles.SummaryLabel.Render("요약") + "\n\n")

	if !m.hasSum {
		b.WriteString(m.styles.Subtle.Render("요약이 아직 준비되지 않았습니다."))
		return b.String()
	}

	if m.fields.Fallback {
		b.WriteString(m.fields.Overview + "\n")
		if len(m.fields.KeyPoints) > 0 {
			b.WriteString("\n" + m.styles.SummaryLabel.Render("핵심 포인트") + "\n")
			for _, p := range m.fields.KeyPoints {
				b.WriteString("• " + p + "\n")
			}
		}
		b.WriteString(m.renderEntities())
		return b.String()
	}

	if m.fields.MainTopic != "" {
		b.WriteString(m.styles.SummaryLabel.Render("주제") + "\n" + m.fields.MainTopic + "\n\n")
	}
	if len(m.fields.KeyPoints) > 0 {
		b.WriteString(m.styles.SummaryLabel.Render("핵심 포인트") + "\n")
		for _, p := range m.fields.KeyPoints {
			b.WriteString("• " + p + "\n")
		}
		b.WriteString("\n")
	}
	if len(m.fields.KeyTerms) > 0 {
		b.WriteString(m.styles.SummaryLabel.Render("주요 용어") + "\n")
		b.WriteString(strings.Join(m.fields.KeyTerms, ", ") + "\n\n")
	}
	b.WriteString(m.renderEntities())
	return b.String()
}

func (m chatModel) renderEntities() string {
	var b strings.Builder
	if m.company != "" {
		b.WriteString("\n" + m.styles.SummaryLabel.Render("주요 기업") + "\n" + m.company + "\n")
	}
	if len(m.keywords) > 0 {
		b.WriteString("\n" + m.styles.SummaryLabel.Render("키워드") + "\n")
		b.WriteString(strings.Join(m.keywords, ", ") + "\n")
	}
	return b.String()
}
