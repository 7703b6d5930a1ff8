package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneymong/internal/config"
	"moneymong/internal/datasource"
	"moneymong/internal/domain/models"
	"moneymong/internal/summary"
)

// galleryModel is the paginated document list with debounced search, sort
// toggles and page navigation.
type galleryModel struct {
	styles *Styles
	ds     datasource.DataSource

	query models.DocumentQuery
	quiet time.Duration

	// seq orders searches and responses. Each keystroke bumps it, so a
	// debounce tick or a response from an earlier query is recognized as
	// stale and dropped.
	seq int

	searchFocused bool
	input         string

	loading bool
	errText string
	page    *models.Page[models.DocumentWithSummary]
	cursor  int
	width   int
}

func newGalleryModel(styles *Styles, ds datasource.DataSource, pageSize int, quiet time.Duration) galleryModel {
	q := models.DocumentQuery{PageSize: pageSize}
	q.ApplyDefaults()
	return galleryModel{
		styles: styles,
		ds:     ds,
		query:  q,
		quiet:  quiet,
	}
}

// load dispatches the current query under a fresh sequence number.
func (m galleryModel) load() (galleryModel, tea.Cmd) {
	m.seq++
	m.loading = true
	m.errText = ""
	return m, fetchDocumentsCmd(m.ds, m.query, m.seq)
}

func (m galleryModel) Update(msg tea.Msg) (galleryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.query.Search = strings.TrimSpace(m.input)
		m.query.Page = 1
		return m.load()

	case documentsPageMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.page = msg.page
		if m.cursor >= len(m.page.Items) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m galleryModel) updateSearch(msg tea.KeyMsg) (galleryModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchFocused = false
		return m, nil
	case tea.KeyEnter:
		// Enter searches immediately, skipping the remaining quiet period.
		m.searchFocused = false
		m.query.Search = strings.TrimSpace(m.input)
		m.query.Page = 1
		return m.load()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	default:
		return m, nil
	}
	if runes := []rune(m.input); len(runes) > config.MaxSearchLength {
		m.input = string(runes[:config.MaxSearchLength])
	}
	// Trailing debounce: every edit re-arms the timer, so only the tick
	// belonging to the last edit fires a query.
	m.seq++
	return m, debounceCmd(m.quiet, m.seq)
}

func (m galleryModel) updateList(msg tea.KeyMsg) (galleryModel, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchFocused = true
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.page != nil && m.cursor < len(m.page.Items)-1 {
			m.cursor++
		}

	case "left", "h":
		if m.query.Page > 1 {
			m.query.Page--
			return m.load()
		}
	case "right", "l":
		if m.page != nil && m.query.Page < m.totalPages() {
			m.query.Page++
			return m.load()
		}

	case "s":
		if m.query.Sort == models.SortPublishedDate {
			m.query.Sort = models.SortTitle
		} else {
			m.query.Sort = models.SortPublishedDate
		}
		m.query.Page = 1
		return m.load()
	case "o":
		if m.query.Order == models.OrderDesc {
			m.query.Order = models.OrderAsc
		} else {
			m.query.Order = models.OrderDesc
		}
		m.query.Page = 1
		return m.load()

	case "r":
		if m.errText != "" {
			return m.load()
		}

	case "c":
		return m, openGeneralChatCmd(m.ds)

	case "enter":
		if m.page != nil && m.cursor < len(m.page.Items) {
			doc := m.page.Items[m.cursor].Document
			return m, openChatCmd(m.ds, doc)
		}
	}
	return m, nil
}

func (m galleryModel) totalPages() int {
	if m.page == nil || m.page.Total == 0 {
		return 1
	}
	return (m.page.Total + m.query.PageSize - 1) / m.query.PageSize
}

func (m galleryModel) View() string {
	var b strings.Builder

	box := m.styles.SearchIdle
	if m.searchFocused {
		box = m.styles.SearchActive
	}
	b.WriteString(box.Render("검색: "+m.input) + "\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("sort: %s %s", m.query.Sort, m.query.Order)) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Subtle.Render("loading documents...") + "\n")
	case m.errText != "":
		b.WriteString(m.styles.Error.Render("failed to load documents: "+m.errText) + "\n")
		b.WriteString(m.styles.Subtle.Render("press r to retry") + "\n")
	case m.page == nil || len(m.page.Items) == 0:
		b.WriteString(m.styles.Subtle.Render("보고서가 없습니다") + "\n")
	default:
		for i, item := range m.page.Items {
			line := m.renderItem(item)
			if i == m.cursor {
				line = m.styles.Selected.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + m.styles.Subtle.Render(
			fmt.Sprintf("page %d/%d · %d documents", m.query.Page, m.totalPages(), m.page.Total)) + "\n")
	}

	b.WriteString("\n" + m.styles.Footer.Render(
		"/ search · ↑↓ select · ←→ page · s sort · o order · enter open · c chat · L logout · q quit"))
	return b.String()
}

func (m galleryModel) renderItem(item models.DocumentWithSummary) string {
	date := item.PublishedDate
	if date == "" {
		date = "----------"
	}
	line := fmt.Sprintf("%s  %s", date, item.Title)
	if item.Author != "" {
		line += m.styles.Subtle.Render("  · " + item.Author)
	}
	if blurb := summary.ShortText(item.Summary); blurb != "" {
		line += "\n    " + m.styles.Subtle.Render(truncate(blurb, 80))
	}
	return line
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
