package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puzzles/internal/core"
	"github.com/vovakirdan/tui-puzzles/internal/games/slide"
	"github.com/vovakirdan/tui-puzzles/internal/games/t2048"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

// PickerOption is one line in a mode picker. An option with Sub opens a
// nested list instead of finishing the pick.
type PickerOption struct {
	Label  string
	GameID string
	Level  int // 2048 campaign start level, 1-based; 0 = first
	Sub    []PickerOption
}

// Picker describes the choices offered before a puzzle family starts.
type Picker struct {
	Title    string
	Subtitle string
	Options  []PickerOption
}

// PickerFor returns the picker for a menu entry, or false when the entry
// starts a game directly.
func PickerFor(gameID string) (Picker, bool) {
	switch registry.Resolve(gameID) {
	case "2048", "2048_endless":
		return t2048Picker(), true
	}
	if gameID == "slide" || strings.HasPrefix(gameID, "slide_") {
		return slidePicker(), true
	}
	return Picker{}, false
}

func slidePicker() Picker {
	opts := make([]PickerOption, 0, len(slide.Sizes))
	for _, n := range slide.Sizes {
		opts = append(opts, PickerOption{
			Label:  fmt.Sprintf("%dx%d  (%d tiles)", n, n, n*n-1),
			GameID: slide.IDFor(n),
		})
	}
	return Picker{
		Title:    "S L I D I N G   P U Z Z L E",
		Subtitle: "Select board size:",
		Options:  opts,
	}
}

func t2048Picker() Picker {
	names := t2048.LevelNames()
	targets := t2048.LevelTargets()

	levels := make([]PickerOption, len(names))
	for i, name := range names {
		levels[i] = PickerOption{
			Label:  fmt.Sprintf("%2d. %s (Target: %d)", i+1, name, targets[i]),
			GameID: "2048",
			Level:  i + 1,
		}
	}

	return Picker{
		Title:    "2 0 4 8",
		Subtitle: "Select game mode:",
		Options: []PickerOption{
			{Label: fmt.Sprintf("Campaign (%d levels)", len(names)), GameID: "2048"},
			{Label: "Endless Mode", GameID: "2048_endless"},
			{Label: "Select Level...", Sub: levels},
		},
	}
}

// Apply hands the pick's side settings to the game packages and returns
// the game ID to create.
func (o PickerOption) Apply() string {
	if o.Level > 0 && o.GameID == "2048" {
		t2048.SetStartLevel(o.Level)
	}
	return o.GameID
}

// pickerKeyMap defines the key bindings for pickers.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// PickerModel lets the user choose a board size or a 2048 mode and level.
type PickerModel struct {
	picker   Picker
	stack    [][]PickerOption // Parent lists while inside a Sub
	cursors  []int
	options  []PickerOption
	cursor   int
	keys     pickerKeyMap
	help     help.Model
	width    int
	height   int
	selected *PickerOption
	quitting bool
	back     bool
}

// NewPickerModel creates a picker model.
func NewPickerModel(p Picker, width, height int) PickerModel {
	h := help.New()
	h.Width = width
	return PickerModel{
		picker:  p,
		options: p.Options,
		keys:    defaultPickerKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.options) == 0 {
			return m, nil
		}
		opt := m.options[m.cursor]
		if len(opt.Sub) > 0 {
			m.stack = append(m.stack, m.options)
			m.cursors = append(m.cursors, m.cursor)
			m.options = opt.Sub
			m.cursor = 0
			return m, nil
		}
		m.selected = &opt
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if depth := len(m.stack); depth > 0 {
			m.options = m.stack[depth-1]
			m.cursor = m.cursors[depth-1]
			m.stack = m.stack[:depth-1]
			m.cursors = m.cursors[:depth-1]
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current option list.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.picker.Title, m.width))
	b.WriteString("\n\n")

	subtitle := m.picker.Subtitle
	if len(m.stack) > 0 {
		subtitle = "Select level:"
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.Label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// Selected returns the finished pick, or nil.
func (m PickerModel) Selected() *PickerOption {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user backed out of the top level.
func (m PickerModel) WantsBack() bool {
	return m.back
}

// RunPicker runs a picker and returns the chosen option, or nil if the user
// backed out or quit.
func RunPicker(p Picker, cfg core.RuntimeConfig) (*PickerOption, error) {
	prog := tea.NewProgram(NewPickerModel(p, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := prog.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
