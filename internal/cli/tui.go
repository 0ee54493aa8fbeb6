package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/statcard/pkg/card/theme"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Names    []string
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewThemeListModel creates a new theme list model with the cursor on the
// first name.
func NewThemeListModel(names []string) ThemeListModel {
	return ThemeListModel{
		Names:  names,
		Height: 15,
	}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Names) == 0 {
				return m, nil
			}
			m.Selected = m.Names[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Names))
	visible := m.Names[m.Offset:end]

	t := themeTable(visible, func(i int) string {
		if m.Offset+i == m.Cursor {
			return "▸ "
		}
		return "  "
	})
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == -1 {
			return headerStyle
		}
		if m.Offset+row == m.Cursor {
			return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(colorWhite)
	})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Names))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// themeTable lays out one row per theme with color swatches. cursor returns
// the marker for the i-th row.
func themeTable(names []string, cursor func(i int) string) *table.Table {
	rows := make([][]string, len(names))
	for i, name := range names {
		p, _ := theme.Lookup(name)
		rows[i] = []string{cursor(i), name, swatch(p.TitleColor), swatch(p.TextColor), swatch(p.IconColor), swatch(p.BgColor)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Theme", "Title", "Text", "Icon", "Background").
		Rows(rows...)
}

// swatch renders a bare hex color as a colored block followed by its code.
func swatch(hex string) string {
	if len(hex) != 3 && len(hex) != 6 {
		return "#" + hex
	}
	block := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex)).Render("██")
	return block + " #" + hex
}
