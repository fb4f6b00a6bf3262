package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/symbol"
)

// List styles
var (
	listDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	listHeadStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// browseCommand creates the browse command: an interactive symbol picker
// that prints the chosen symbol's attachment points.
func (c *CLI) browseCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a symbol interactively and show its attachment points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if reg.Len() == 0 {
				printInfo("No symbols found")
				return nil
			}

			p := tea.NewProgram(NewSymbolListModel(reg.All()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}
			m, ok := finalModel.(SymbolListModel)
			if !ok || m.Selected == nil {
				printDetail("No selection made")
				return nil
			}
			return runPointsAll(m.Selected, &pointsOpts{})
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}

// =============================================================================
// SymbolListModel - Interactive symbol selection
// =============================================================================

// SymbolListModel is the bubbletea model for interactive symbol selection.
// Pressing "/" starts a name filter; typing narrows the list, enter or esc
// ends filtering.
type SymbolListModel struct {
	All       []*symbol.Definition
	Symbols   []*symbol.Definition // All narrowed by Filter
	Filter    string
	Filtering bool
	Cursor    int
	Selected  *symbol.Definition
	Height    int
	Offset    int
}

// NewSymbolListModel creates a new symbol list model.
func NewSymbolListModel(defs []*symbol.Definition) SymbolListModel {
	return SymbolListModel{All: defs, Symbols: defs, Height: 15}
}

func (m SymbolListModel) Init() tea.Cmd {
	return nil
}

func (m SymbolListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering {
			return m.updateFilter(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.Filtering = true
		case "up", "k":
			m = m.move(-1)
		case "down", "j":
			m = m.move(1)
		case "enter":
			if len(m.Symbols) == 0 {
				return m, nil
			}
			m.Selected = m.Symbols[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m SymbolListModel) updateFilter(msg tea.KeyMsg) SymbolListModel {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.Filtering = false
		return m
	case tea.KeyBackspace:
		if m.Filter == "" {
			return m
		}
		r := []rune(m.Filter)
		m.Filter = string(r[:len(r)-1])
	case tea.KeyRunes:
		m.Filter += string(msg.Runes)
	default:
		return m
	}
	m.Symbols = filterSymbols(m.All, m.Filter)
	m.Cursor, m.Offset = 0, 0
	return m
}

func (m SymbolListModel) move(delta int) SymbolListModel {
	m.Cursor = min(max(m.Cursor+delta, 0), max(len(m.Symbols)-1, 0))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m
}

// filterSymbols keeps the definitions whose name contains filter,
// ignoring case.
func filterSymbols(defs []*symbol.Definition, filter string) []*symbol.Definition {
	if filter == "" {
		return defs
	}
	f := strings.ToLower(filter)
	var out []*symbol.Definition
	for _, d := range defs {
		if strings.Contains(strings.ToLower(d.Name), f) {
			out = append(out, d)
		}
	}
	return out
}

func (m SymbolListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Symbol"))
	b.WriteString("\n")
	switch {
	case m.Filtering:
		b.WriteString("/" + m.Filter + "█")
	case m.Filter != "":
		b.WriteString(listDimStyle.Render("filter: " + m.Filter + "  / edit  ↑/↓ navigate  ⏎ select  q quit"))
	default:
		b.WriteString(listDimStyle.Render("↑/↓ navigate  / filter  ⏎ select  q quit"))
	}
	b.WriteString("\n\n")

	if len(m.Symbols) == 0 {
		b.WriteString(listDimStyle.Render("  no symbols match"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Symbols))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Symbols[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, d.Name, fmt.Sprintf("%d", d.ElementCount()), specSummary(d.Specs)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Symbol", "Elements", "Attachment points").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeadStyle
			}
			idx := m.Offset + row
			switch {
			case idx >= len(m.Symbols):
				return lipgloss.NewStyle()
			case idx == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case !m.Symbols[idx].HasSpecs():
				return lipgloss.NewStyle().Foreground(colorDim)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Symbols))))

	return b.String()
}
