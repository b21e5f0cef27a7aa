package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/zonegen/pkg/config"
	"github.com/matzehuels/zonegen/pkg/pipeline"
	"github.com/matzehuels/zonegen/pkg/zone"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorBright)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorFail)

	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFaint).
			Padding(0, 1)
)

// =============================================================================
// LayoutListModel - Interactive layout browser
// =============================================================================

// PreviewItem is one layout shown in the browser. Err is set when the
// layout could not be partitioned.
type PreviewItem struct {
	Name   string
	Source string
	Root   zone.Zone
	Zones  []zone.Zone
	Err    error
}

// LayoutListModel is the bubbletea model for browsing a document's layouts
// next to a character drawing of the selected one.
type LayoutListModel struct {
	Items    []PreviewItem
	Cursor   int
	Selected *PreviewItem
	Height   int
	Offset   int
	Cols     int
	Rows     int
}

// NewLayoutListModel creates a new layout list model.
func NewLayoutListModel(items []PreviewItem) LayoutListModel {
	return LayoutListModel{
		Items:  items,
		Height: 15,
		Cols:   50,
		Rows:   20,
	}
}

func (m LayoutListModel) Init() tea.Cmd {
	return nil
}

func (m LayoutListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Items) == 0 {
				return m, nil
			}
			item := m.Items[m.Cursor]
			if item.Err != nil {
				return m, nil
			}
			m.Selected = &item
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.Rows = max(msg.Height-8, 5)
		m.Cols = max(msg.Width-40, 10)
	}
	return m, nil
}

func (m LayoutListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layouts"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		if it.Err != nil {
			style = listErrorStyle
		}
		list.WriteString(cursor + style.Render(it.Name))
		if it.Err == nil {
			list.WriteString(" " + listDimStyle.Render(fmt.Sprintf("(%d)", len(it.Zones))))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", m.detail()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Items)), len(m.Items))))

	return b.String()
}

// detail renders the selected layout's source and drawing.
func (m LayoutListModel) detail() string {
	if len(m.Items) == 0 {
		return listDimStyle.Render("no layouts")
	}
	it := m.Items[m.Cursor]
	header := StyleHighlight.Render(it.Source)
	if it.Err != nil {
		return previewBoxStyle.Render(header + "\n\n" + listErrorStyle.Render(it.Err.Error()))
	}
	return previewBoxStyle.Render(header + "\n\n" + drawZones(it.Zones, it.Root, m.Cols, m.Rows))
}

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "preview [config]",
		Short: "Browse the layouts of a document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseRoot(rootFlag)
			if err != nil {
				return err
			}
			return c.runPreview(cmd, args[0], root)
		},
	}
	cmd.Flags().StringVar(&rootFlag, "root", "", "root rectangle as WxH+X+Y (default 100x100+0+0)")
	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, path string, root zone.Zone) error {
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	items := make([]PreviewItem, len(doc.Layouts))
	for i, l := range doc.Layouts {
		res, err := pipeline.Generate(cmd.Context(), l, doc.PaddingFor(l), root)
		items[i] = PreviewItem{Name: l.Name, Source: l.Layout, Root: root, Zones: res.Zones, Err: err}
	}

	p := tea.NewProgram(NewLayoutListModel(items), tea.WithContext(cmd.Context()))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(LayoutListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	printSuccess("%s %s", fm.Selected.Name, StyleDim.Render(fm.Selected.Source))
	return writeZoneTable(cmd.OutOrStdout(), fm.Selected.Zones)
}
