package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"animora/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Pet *pet.Pet
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	makeBar := func(value float64) string {
		filled := int(value / 20)
		var bar strings.Builder
		for i := 0; i < 5; i++ {
			if i < filled {
				bar.WriteString("█")
			} else {
				bar.WriteString("░")
			}
		}
		return bar.String()
	}

	p := m.Pet
	s := p.Stats()
	prof := p.Profile()

	habits := []string{}
	if prof.Nocturnal {
		habits = append(habits, "nocturnal")
	}
	if prof.PrefersIndoors {
		habits = append(habits, "homebody")
	}
	if prof.PrefersOutdoors {
		habits = append(habits, "outdoorsy")
	}
	habitDisplay := strings.Join(habits, ", ")
	if habitDisplay == "" {
		habitDisplay = "easygoing"
	}

	ability := "None"
	if a, ok := p.Ability(); ok {
		ability = a.Name
	}

	var b strings.Builder
	b.WriteString("╔════════════════════════════════════╗\n")
	b.WriteString(fmt.Sprintf("║  %s %s %s\n", p.Type.Emoji(), p.Name, p.Type.Emoji()))
	b.WriteString("╠════════════════════════════════════╣\n")
	b.WriteString(fmt.Sprintf("║  Type:    %-24s ║\n", p.Type))
	b.WriteString(fmt.Sprintf("║  Level:   %-24s ║\n", fmt.Sprintf("%d (%.0f/%.0f xp)", p.Level, p.Experience, p.ExperienceToNextLevel())))
	b.WriteString(fmt.Sprintf("║  Habits:  %-24s ║\n", habitDisplay))
	b.WriteString(fmt.Sprintf("║  Likes:   %-24s ║\n", prof.PreferredWeather))
	b.WriteString(fmt.Sprintf("║  Ability: %-24s ║\n", ability))
	b.WriteString(fmt.Sprintf("║  Mood:    %-24s ║\n", p.Mood()))
	b.WriteString("║                                    ║\n")
	b.WriteString(fmt.Sprintf("║  Hunger:      [%s] %3.0f%%         ║\n", makeBar(s.Hunger), s.Hunger))
	b.WriteString(fmt.Sprintf("║  Mood:        [%s] %3.0f%%         ║\n", makeBar(s.Mood), s.Mood))
	b.WriteString(fmt.Sprintf("║  Energy:      [%s] %3.0f%%         ║\n", makeBar(s.Energy), s.Energy))
	b.WriteString(fmt.Sprintf("║  Cleanliness: [%s] %3.0f%%         ║\n", makeBar(s.Cleanliness), s.Cleanliness))
	b.WriteString(fmt.Sprintf("║  Health:      [%s] %3.0f%%         ║\n", makeBar(s.Health), s.Health))
	b.WriteString("╚════════════════════════════════════╝\n")
	b.WriteString("\nPress ESC, click, or any key to close...")

	return b.String()
}

// DisplayStats shows the stats card until a key is pressed
func DisplayStats(p *pet.Pet) error {
	program := tea.NewProgram(StatsModel{Pet: p}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("stats display: %w", err)
	}
	return nil
}

// Run starts the game loop
func Run(m Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
