package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"animora/internal/item"
	"animora/internal/pet"
	"animora/internal/wander"
	"animora/internal/world"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	menu     lipgloss.Style
	menuBox  lipgloss.Style
	stats    lipgloss.Style
	world    lipgloss.Style
	events   lipgloss.Style
	barFull  lipgloss.Style
	barLow   lipgloss.Style
	barEmpty lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	world: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7DCFFF")),

	events: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Width(40),

	barFull: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A")),

	barLow: lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")),

	barEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.InItemMenu {
		return m.renderItemMenu()
	}
	if m.InLocationMenu {
		return m.renderLocationMenu()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	sections := []string{
		m.renderTitle(),
		m.renderWorld(),
		"",
		m.Walker.Render(wander.Emoji(m.Pet, m.Walker.Distance())),
		"",
		m.renderStats(),
		"",
		m.renderStatus(),
	}

	if msg := m.currentMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}
	if len(m.Events) > 0 {
		sections = append(sections, "", gameStyles.events.Render(strings.Join(m.Events, "\n")))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use arrows to move • enter to select • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	emoji := m.Pet.Type.Emoji()
	return gameStyles.title.Render(fmt.Sprintf("%s %s the %s %s  Lv.%d", emoji, m.Pet.Name, m.Pet.Type, emoji, m.Pet.Level))
}

func (m Model) renderWorld() string {
	env := m.Clock.Environment(m.Location)
	where := "🌳 Outdoors"
	if env.Indoor {
		where = "🏠 Indoors"
	}
	return gameStyles.world.Render(fmt.Sprintf("%s (%s) • %s %s • %s %s",
		m.Location.Name, where,
		env.TimeOfDay.Emoji(), env.TimeOfDay,
		env.Weather.Emoji(), env.Weather))
}

func (m Model) currentMessage() string {
	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		return m.Message
	}
	return ""
}

// makeBar renders a stat as a ten-cell bar, red below the critical threshold
func makeBar(value float64) string {
	filled := int(value / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	style := gameStyles.barFull
	if value < pet.CriticalStatThreshold {
		style = gameStyles.barLow
	}
	return style.Render(strings.Repeat("█", filled)) + gameStyles.barEmpty.Render(strings.Repeat("░", 10-filled))
}

func (m Model) renderStats() string {
	s := m.Pet.Stats()
	mood := m.Pet.Mood()

	stats := []struct {
		name  string
		value float64
	}{
		{"Hunger", s.Hunger},
		{"Mood", s.Mood},
		{"Energy", s.Energy},
		{"Clean", s.Cleanliness},
		{"Health", s.Health},
	}

	lines := []string{
		fmt.Sprintf("%-8s %s %s", "Feeling:", mood.Emoji(), mood),
		fmt.Sprintf("%-8s %.0f / %.0f", "XP:", m.Pet.Experience, m.Pet.ExperienceToNextLevel()),
	}
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-8s %s %3.0f%%", stat.name+":", makeBar(stat.value), stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	status := pet.GetStatusWithLabel(m.Pet)
	if m.Pet.Activity() != pet.Idle && m.Pet.Activity() != pet.Sleeping {
		status += fmt.Sprintf(" (%.0f%%)", m.Pet.DwellProgress()*100)
	}
	return gameStyles.status.Render("Status: " + status)
}

func (m Model) menuLabels() []string {
	sleep := "Sleep"
	if m.Pet.Activity() == pet.Sleeping {
		sleep = "Wake"
	}

	ability := "Ability"
	if a, ok := m.Pet.Ability(); ok {
		ability = a.Name
		if cd := m.Pet.AbilityCooldown(); cd > 0 {
			ability += fmt.Sprintf(" (%.0fs)", cd)
		}
	}

	return []string{"Feed", "Play", "Clean", "Heal", sleep, ability, "Items", "Location", "Quit"}
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range m.menuLabels() {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderItemMenu() string {
	var menuItems []string
	for i, it := range item.Catalog {
		cursor := " "
		if m.ItemChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s %-20s %s", cursor, it.Emoji, it.Name, it.Kind))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("🎒 Items"),
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
		"",
		gameStyles.status.Render("Press Esc to go back"),
	)
}

func (m Model) renderLocationMenu() string {
	var menuItems []string
	for i, loc := range world.Locations {
		cursor := " "
		if m.LocationChoice == i {
			cursor = ">"
		}
		where := "outdoor"
		if loc.Indoor {
			where = "indoor"
		}
		here := ""
		if loc.Name == m.Location.Name {
			here = " •"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %-18s %s%s", cursor, loc.Name, where, here))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("🧭 Where to?"),
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
		"",
		gameStyles.status.Render("Press Esc to go back"),
	)
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		m.renderTitle(),
		"",
		animStyle.Render(frame),
	}

	if msg := m.currentMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
