package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// loginModel shows the OAuth login URL and accepts the pasted authorization
// code. The browser round-trip happens outside the terminal.
type loginModel struct {
	styles *Styles

	loginURL   string
	code       string
	exchanging bool
	errText    string
}

func newLoginModel(styles *Styles, loginURL string) loginModel {
	return loginModel{styles: styles, loginURL: loginURL}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.exchanging = false
		if msg.err != nil {
			m.errText = "login failed: " + msg.err.Error()
			return m, nil
		}
		// App switches to the gallery; nothing left to do here.
		return m, nil

	case tea.KeyMsg:
		if m.exchanging {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			code := strings.TrimSpace(m.code)
			if code == "" {
				m.errText = "paste the authorization code first"
				return m, nil
			}
			m.exchanging = true
			m.errText = ""
			return m, func() tea.Msg { return loginSubmitMsg{code: code} }
		case tea.KeyBackspace:
			if len(m.code) > 0 {
				runes := []rune(m.code)
				m.code = string(runes[:len(runes)-1])
			}
		case tea.KeyRunes:
			m.code += string(msg.Runes)
		case tea.KeySpace:
			m.code += " "
		}
	}
	return m, nil
}

// loginSubmitMsg hands the pasted code to the app, which owns the API client.
type loginSubmitMsg struct {
	code string
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("머니몽에 로그인") + "\n\n")
	b.WriteString("Open this URL in your browser and sign in with Google:\n")
	b.WriteString(m.styles.Subtle.Render(m.loginURL) + "\n\n")
	b.WriteString("Then paste the authorization code below and press Enter.\n\n")

	box := m.styles.SearchActive
	if m.exchanging {
		box = m.styles.SearchIdle
	}
	b.WriteString(box.Render(fmt.Sprintf("code: %s", m.code)) + "\n")

	if m.exchanging {
		b.WriteString(m.styles.Subtle.Render("exchanging code...") + "\n")
	}
	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText) + "\n")
	}
	return b.String()
}
