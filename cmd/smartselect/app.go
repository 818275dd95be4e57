package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartselect"
)

// user is the option type for the remote select, decoded from the GitHub
// user-search response.
type user struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

const (
	widgetFruit = iota
	widgetTags
	widgetUsers
	widgetCount
)

type appModel struct {
	cfg     demoConfig
	surface *smartselect.StaticSurface

	fruit smartselect.Model[string]
	tags  smartselect.Model[string]
	users smartselect.Model[user]

	active int
	width  int
	height int
	status string
}

func newApp(cfg demoConfig) appModel {
	surface := &smartselect.StaticSurface{Rects: map[string]smartselect.Rect{}}

	fruit := smartselect.New(smartselect.Config[string]{
		IDPrefix:      "fruit",
		Label:         func(s string) string { return s },
		CloseOnSelect: true,
		MaxVisible:    cfg.UI.MaxVisible,
		Surface:       surface,
	})
	fruit = fruit.SetOptions(cfg.Fruits)

	tags := smartselect.New(smartselect.Config[string]{
		IDPrefix:   "tags",
		Label:      func(s string) string { return s },
		Multi:      true,
		MaxVisible: cfg.UI.MaxVisible,
		Messages:   smartselect.Messages{Placeholder: "Add tags..."},
		Surface:    surface,
	})
	tags = tags.SetOptions(cfg.Tags)

	remoteURL := cfg.Remote.URL
	users := smartselect.New(smartselect.Config[user]{
		IDPrefix:    "users",
		Label:       func(u user) string { return u.Login },
		Description: func(u user) string { return u.Name },
		MaxVisible:  cfg.UI.MaxVisible,
		Surface:     surface,
		Remote: &smartselect.RemoteConfig[user]{
			Threshold: cfg.Remote.Threshold,
			Debounce:  time.Duration(cfg.Remote.DebounceMS) * time.Millisecond,
			URL: func(query string) string {
				return fmt.Sprintf(remoteURL, url.QueryEscape(query))
			},
			Headers: map[string]string{"Accept": "application/vnd.github+json"},
			Decode:  decodeUsers,
		},
	})

	return appModel{
		cfg:     cfg,
		surface: surface,
		fruit:   fruit,
		tags:    tags,
		users:   users,
		status:  "tab: next widget · enter: open/select · esc: close · q: quit",
	}
}

func decodeUsers(data []byte) ([]user, error) {
	var payload struct {
		Items []user `json:"items"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fruit.Init(), m.tags.Init(), m.users.Init())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m.broadcast(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.activeOpen() || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		case "tab":
			if !m.activeOpen() {
				m.active = (m.active + 1) % widgetCount
				return m, nil
			}
		}
		// Keys go to the active widget only.
		return m.forwardToActive(msg)

	case smartselect.SelectionChangedMsg[string]:
		m.status = fmt.Sprintf("%s: [%s]", msg.ID, strings.Join(msg.Selected, ", "))
		return m, nil

	case smartselect.SelectionChangedMsg[user]:
		logins := make([]string, len(msg.Selected))
		for i, u := range msg.Selected {
			logins[i] = u.Login
		}
		m.status = fmt.Sprintf("%s: [%s]", msg.ID, strings.Join(logins, ", "))
		return m, nil

	case smartselect.OpenedMsg, smartselect.ClosedMsg:
		m.layout()
		return m, nil

	default:
		// Debounce firings, remote results, spinner and blink ticks carry
		// their own instance identity; every widget sees them.
		return m.broadcast(msg)
	}
}

func (m *appModel) activeOpen() bool {
	switch m.active {
	case widgetFruit:
		return m.fruit.IsOpen()
	case widgetTags:
		return m.tags.IsOpen()
	default:
		return m.users.IsOpen()
	}
}

func (m appModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case widgetFruit:
		m.fruit, cmd = m.fruit.Update(msg)
	case widgetTags:
		m.tags, cmd = m.tags.Update(msg)
	default:
		m.users, cmd = m.users.Update(msg)
	}
	return m, cmd
}

func (m appModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.fruit, cmd = m.fruit.Update(msg)
	cmds = append(cmds, cmd)
	m.tags, cmd = m.tags.Update(msg)
	cmds = append(cmds, cmd)
	m.users, cmd = m.users.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// layout records where each trigger sits and how large a popover would be,
// so the widgets can measure themselves through the shared surface. The demo
// stacks the three widgets vertically with a fixed row budget per widget.
const (
	triggerHeight = 3 // bordered single-line trigger
	widgetGap     = 1
	popoverWidth  = 44
)

func (m *appModel) layout() {
	if m.width == 0 {
		return
	}
	m.surface.View = smartselect.Rect{Width: float64(m.width), Height: float64(m.height)}
	m.surface.HasView = true

	popoverHeight := float64(m.cfg.UI.MaxVisible + 4) // input + options + border

	y := 1.0 // title row
	for _, prefix := range []string{"fruit", "tags", "users"} {
		y++ // label row
		m.surface.Rects[smartselect.ComponentID(prefix)] = smartselect.Rect{
			X: 0, Y: y, Width: popoverWidth, Height: triggerHeight,
		}
		m.surface.Rects[smartselect.ContainerID(prefix)] = smartselect.Rect{
			X: 0, Y: y + triggerHeight, Width: popoverWidth, Height: popoverHeight,
		}
		y += triggerHeight + widgetGap
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	activeLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("smartselect demo"))
	b.WriteString("\n")

	labels := []string{"Fruit (single)", "Tags (multi)", "GitHub users (remote)"}
	views := []string{m.fruit.View(), m.tags.View(), m.users.View()}
	for i := range labels {
		style := labelStyle
		if i == m.active {
			style = activeLabel
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(views[i])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))

	frame := b.String()
	frame = m.overlayPopover(frame, m.fruit.PopoverView(), m.fruit.Alignment())
	frame = m.overlayPopover(frame, m.tags.PopoverView(), m.tags.Alignment())
	frame = m.overlayPopover(frame, m.users.PopoverView(), m.users.Alignment())
	return frame
}

func (m appModel) overlayPopover(frame, popover string, a *smartselect.Alignment) string {
	if popover == "" || a == nil {
		return frame
	}
	return smartselect.Overlay(frame, popover, *a)
}
