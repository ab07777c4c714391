// Package tui is the interactive surface over the palette core. It holds
// no palette logic of its own: every edit goes through the document's
// mutation operations or the animation engine, and the visible rows are
// re-derived through internal/view after each change notification.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/palctl/internal/anim"
	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// EditorResult reports how the session ended.
type EditorResult struct {
	// Saved is true when the user committed their edits (write key); the
	// caller owns the actual file write.
	Saved bool
}

// colorItem adapts one palette color for the bubbles list.
type colorItem struct {
	Color *palette.Color
	Frame int
}

// FilterValue feeds the built-in list filter with the export name.
func (it colorItem) FilterValue() string {
	return it.Color.ExportName()
}

type colorDelegate struct{}

func (d colorDelegate) Height() int  { return 1 }
func (d colorDelegate) Spacing() int { return 0 }
func (d colorDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d colorDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, okItem := item.(colorItem)
	if !okItem {
		return
	}
	c := it.Color

	rgba := anim.Interpolate(c, it.Frame)
	hex := colormath.RGBToHex(int(rgba.R), int(rgba.G), int(rgba.B))
	swatch := swatchStyle(hex).Render(" " + hex + " ")

	name := xansi.Truncate(fmt.Sprintf("%-24s", c.ExportName()), 24, "…")

	marks := ""
	if c.Trace {
		marks += " " + StyleHighlight.Render("●")
	}
	if c.Animated() {
		marks += " " + StyleKeys.Render(fmt.Sprintf("◆%d", len(c.Keyframes)))
	}

	line := fmt.Sprintf("%-4d %s %s a=%-3d%s", c.OriginalIndex, name, swatch, rgba.A, marks)
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› ")+line)
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(line))
	}
}

// swatchStyle paints the hex label on its own color, picking black or
// white text for contrast.
func swatchStyle(hex string) lipgloss.Style {
	style := lipgloss.NewStyle().Background(lipgloss.Color(hex))
	if col, err := colorful.Hex(hex); err == nil {
		if _, _, l := col.Hsl(); l > 0.5 {
			return style.Foreground(lipgloss.Color("#000000"))
		}
	}
	return style.Foreground(lipgloss.Color("#ffffff"))
}

type editorKeys struct {
	quit         key.Binding
	write        key.Binding
	frameBack    key.Binding
	frameForward key.Binding
	prevKey      key.Binding
	nextKey      key.Binding
	toggleKey    key.Binding
	cycleSort    key.Binding
	animatedOnly key.Binding
	trace        key.Binding
	addColor     key.Binding
	deleteColor  key.Binding
}

var keys = editorKeys{
	quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	write:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write file")),
	frameBack:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "frame -1")),
	frameForward: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "frame +1")),
	prevKey:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev keyframe")),
	nextKey:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next keyframe")),
	toggleKey:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "toggle keyframe")),
	cycleSort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
	animatedOnly: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "animated only")),
	trace:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle autopaint")),
	addColor:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new color")),
	deleteColor:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete color")),
}

// model is the editor state. The document is shared, not copied; the
// model re-derives its visible rows whenever the document notifies.
type model struct {
	doc   *palette.Document
	list  list.Model
	order view.Sort

	frame        int
	animatedOnly bool
	dirty        bool
	saved        bool
	quitting     bool
	status       string

	unsubscribe func()
	stale       bool
}

// RunEditor opens the interactive editor on a shared document. The
// returned result says whether the caller should write the file back.
func RunEditor(doc *palette.Document, order view.Sort) (EditorResult, error) {
	m := newModel(doc, order)
	defer m.unsubscribe()

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return EditorResult{}, fmt.Errorf("running editor: %w", err)
	}
	fm, okModel := final.(*model)
	if !okModel {
		return EditorResult{}, nil
	}
	return EditorResult{Saved: fm.saved}, nil
}

func newModel(doc *palette.Document, order view.Sort) *model {
	m := &model{doc: doc, order: order}
	m.unsubscribe = doc.Subscribe(func() { m.stale = true })

	l := list.New(nil, colorDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	m.list = l
	m.reload()
	return m
}

// reload re-derives the visible rows from the document through the view
// filter and sort.
func (m *model) reload() {
	f := view.Filter{AnimatedOnly: m.animatedOnly}
	colors := m.order.Apply(f.Apply(m.doc.Colors))
	items := make([]list.Item, len(colors))
	for i, c := range colors {
		items[i] = colorItem{Color: c, Frame: m.frame}
	}
	m.list.SetItems(items)
	m.stale = false
}

func (m *model) selected() *palette.Color {
	it, okItem := m.list.SelectedItem().(colorItem)
	if !okItem {
		return nil
	}
	return it.Color
}

// selectedIndex maps the selection back to its document position.
func (m *model) selectedIndex() int {
	c := m.selected()
	if c == nil {
		return -1
	}
	for i, dc := range m.doc.Colors {
		if dc == c {
			return i
		}
	}
	return -1
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.write):
			m.saved = true
			m.dirty = false
			m.status = "written on exit"
			return m, tea.Quit

		case key.Matches(msg, keys.frameBack):
			if m.frame > 0 {
				m.frame--
				m.reload()
			}
			return m, nil

		case key.Matches(msg, keys.frameForward):
			if m.frame < m.doc.FrameCount-1 {
				m.frame++
				m.reload()
			}
			return m, nil

		case key.Matches(msg, keys.prevKey), key.Matches(msg, keys.nextKey):
			c := m.selected()
			if c == nil {
				return m, nil
			}
			dir := anim.Forward
			if key.Matches(msg, keys.prevKey) {
				dir = anim.Backward
			}
			if frame, found := anim.NextKeyframe(c, m.frame, dir); found {
				m.frame = frame
				m.reload()
			}
			return m, nil

		case key.Matches(msg, keys.toggleKey):
			c := m.selected()
			if c == nil {
				return m, nil
			}
			anim.ToggleKeyframe(c, m.frame)
			m.doc.Notify()
			m.dirty = true
			m.syncStale()
			return m, nil

		case key.Matches(msg, keys.cycleSort):
			m.order.Key = nextSortKey(m.order.Key)
			m.status = "sort: " + m.order.Key.String()
			m.reload()
			return m, nil

		case key.Matches(msg, keys.animatedOnly):
			m.animatedOnly = !m.animatedOnly
			m.reload()
			return m, nil

		case key.Matches(msg, keys.trace):
			if idx := m.selectedIndex(); idx >= 0 {
				m.doc.SetTrace(idx, !m.doc.Colors[idx].Trace)
				m.dirty = true
				m.syncStale()
			}
			return m, nil

		case key.Matches(msg, keys.addColor):
			var seed *palette.RGBA
			if c := m.selected(); c != nil {
				resolved := anim.Interpolate(c, m.frame)
				seed = &resolved
			}
			m.doc.AddColor(seed)
			m.dirty = true
			m.syncStale()
			return m, nil

		case key.Matches(msg, keys.deleteColor):
			idx := m.selectedIndex()
			if idx < 0 {
				return m, nil
			}
			if m.doc.Protected(idx) {
				m.status = "background and ink cannot be deleted"
				return m, nil
			}
			m.doc.RemoveColor(idx)
			m.dirty = true
			m.syncStale()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// syncStale re-derives rows if a document notification arrived.
func (m *model) syncStale() {
	if m.stale {
		m.reload()
	}
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	title := m.doc.Meta.Name
	if title == "" {
		title = "level palette " + m.doc.Meta.OriginalID
	}
	dirty := ""
	if m.dirty {
		dirty = " *"
	}
	head := StyleHeader.Render(title+dirty) + StyleMeta.Render(
		fmt.Sprintf("  frame %d/%d  sort %s", m.frame, m.doc.FrameCount-1, m.order.Key))
	if m.animatedOnly {
		head += StyleKeys.Render("  [animated]")
	}

	help := StyleHelp.Render(strings.Join([]string{
		"←/→ frame", "[/] keyframes", "k toggle key", "t autopaint",
		"n new", "x delete", "s sort", "a animated", "w write", "q quit",
	}, " · "))

	status := ""
	if m.status != "" {
		status = "\n" + StyleHelp.Render(m.status)
	}

	return head + "\n\n" + m.list.View() + status + "\n" + help
}

func nextSortKey(k view.SortKey) view.SortKey {
	switch k {
	case view.SortIndex:
		return view.SortName
	case view.SortName:
		return view.SortHue
	default:
		return view.SortIndex
	}
}
