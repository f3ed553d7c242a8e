package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"animora/internal/item"
	"animora/internal/pet"
	"animora/internal/save"
	"animora/internal/wander"
	"animora/internal/world"
)

const (
	// FrameInterval is the simulation frame rate
	FrameInterval = 100 * time.Millisecond
	// MaxFrameDelta caps a single frame so a suspended terminal does not
	// replay minutes of decay at once
	MaxFrameDelta = 1.0
	// AutosaveInterval is seconds of play between saves
	AutosaveInterval = 300.0
	// MessageDuration is how long a transient message stays on screen
	MessageDuration = 3 * time.Second
	// EventLogSize is how many recent events the view keeps
	EventLogSize = 5
)

// Menu entries, in display order
const (
	choiceFeed = iota
	choicePlay
	choiceClean
	choiceHeal
	choiceSleep
	choiceAbility
	choiceItems
	choiceLocation
	choiceQuit
	choiceCount
)

// Model represents the game state
type Model struct {
	Pet      *pet.Pet
	Clock    *world.Clock
	Location world.Location
	Store    save.Store
	Walker   wander.Walker

	Choice         int
	Quitting       bool
	InItemMenu     bool
	ItemChoice     int
	InLocationMenu bool
	LocationChoice int

	Message        string
	MessageExpires time.Time
	Events         []string
	Animation      Animation

	lastFrame time.Time
	sinceSave float64
}

type frameMsg time.Time
type animTickMsg struct {
	started time.Time
}

// NewModel creates a game model around an already loaded pet
func NewModel(p *pet.Pet, clock *world.Clock, loc world.Location, store save.Store) Model {
	return Model{
		Pet:      p,
		Clock:    clock,
		Location: loc,
		Store:    store,
		Walker:   wander.New(40),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			cmd := m.quit()
			return m, cmd
		}

		// While an animation is playing, ignore everything else
		if m.Animation.Type != AnimNone {
			return m, nil
		}

		if m.InItemMenu {
			return m.updateItemMenu(msg)
		}
		if m.InLocationMenu {
			return m.updateLocationMenu(msg)
		}

		switch msg.String() {
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < choiceCount-1 {
				m.Choice++
			}
		case "enter", " ":
			return m.selectChoice()
		}

	case tea.WindowSizeMsg:
		m.Walker.SetWidth(msg.Width - 4)
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			dt := now.Sub(m.lastFrame).Seconds()
			if dt > MaxFrameDelta {
				dt = MaxFrameDelta
			}
			m.advance(dt)
		}
		m.lastFrame = now
		return m, frame()

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

// advance runs one simulation frame: world clock, pet, events, walker, autosave
func (m *Model) advance(dt float64) {
	if dt <= 0 {
		return
	}

	change := m.Clock.Advance(dt)
	if change.Weather {
		m.logEvent(fmt.Sprintf("%s The weather turned %s", change.CurrentWeather.Emoji(), change.CurrentWeather))
	}
	if change.TimeOfDay {
		m.logEvent(fmt.Sprintf("%s It is now %s", change.CurrentTime.Emoji(), change.CurrentTime))
	}

	m.Pet.Tick(dt, m.Clock.Environment(m.Location))
	for _, ev := range m.Pet.DrainEvents() {
		m.handleEvent(ev)
	}

	if m.Pet.Activity() == pet.Idle {
		m.Walker.Step()
	}

	m.sinceSave += dt
	if m.sinceSave >= AutosaveInterval {
		m.sinceSave = 0
		m.save()
	}
}

func (m *Model) handleEvent(ev pet.Event) {
	switch ev.Kind {
	case pet.EventWander:
		m.Walker.SetTarget(ev.Target)
	case pet.EventHappy:
		if !m.Walker.Chasing() {
			m.Walker.Chase(wander.Targets["butterfly"])
		}
	case pet.EventLevelUp:
		m.setMessage(ev.Emoji() + " " + ev.Message)
	}
	m.logEvent(ev.Emoji() + " " + ev.Message)
}

func (m *Model) logEvent(line string) {
	m.Events = append(m.Events, line)
	if len(m.Events) > EventLogSize {
		m.Events = m.Events[len(m.Events)-EventLogSize:]
	}
}

func (m Model) selectChoice() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case choiceFeed:
		return m.useItem(item.Catalog[0])
	case choicePlay:
		return m.useItem(item.OfKind(item.Toy)[0])
	case choiceClean:
		return m.useItem(item.OfKind(item.Soap)[0])
	case choiceHeal:
		return m.useItem(item.OfKind(item.Medicine)[0])
	case choiceSleep:
		return m.toggleSleep()
	case choiceAbility:
		return m.useAbility()
	case choiceItems:
		m.InItemMenu = true
		m.ItemChoice = 0
	case choiceLocation:
		m.InLocationMenu = true
		m.LocationChoice = 0
	case choiceQuit:
		cmd := m.quit()
		return m, cmd
	}
	return m, nil
}

// animationFor maps the activity an item started to its animation
func animationFor(k item.Kind) AnimationType {
	switch k {
	case item.Food:
		return AnimFeed
	case item.Toy:
		return AnimPlay
	case item.Soap:
		return AnimBathe
	case item.Medicine:
		return AnimHeal
	default:
		return AnimNone
	}
}

func (m Model) useItem(it item.Item) (tea.Model, tea.Cmd) {
	if !item.Use(m.Pet, it) {
		m.setMessage(fmt.Sprintf("%s %s is busy %s", m.Pet.Activity().Emoji(), m.Pet.Name, m.Pet.Activity()))
		return m, nil
	}
	if it.Kind == item.Toy {
		m.Walker.Chase(wander.Targets["ball"])
	}
	m.setMessage(fmt.Sprintf("%s %s", it.Emoji, it.Name))
	m.startAnimation(animationFor(it.Kind))
	return m, animTick(m.Animation.StartTime)
}

func (m Model) toggleSleep() (tea.Model, tea.Cmd) {
	if m.Pet.Activity() == pet.Sleeping {
		m.Pet.Wake()
		m.setMessage("☀️ Rise and shine!")
		return m, nil
	}
	if !m.Pet.Sleep() {
		m.setMessage(fmt.Sprintf("%s %s is busy %s", m.Pet.Activity().Emoji(), m.Pet.Name, m.Pet.Activity()))
		return m, nil
	}
	m.startAnimation(AnimSleep)
	return m, animTick(m.Animation.StartTime)
}

func (m Model) useAbility() (tea.Model, tea.Cmd) {
	a, ok := m.Pet.Ability()
	if !ok {
		m.setMessage(fmt.Sprintf("%s has no special ability", m.Pet.Type))
		return m, nil
	}
	msg, ok := m.Pet.UseAbility()
	if !ok {
		if cd := m.Pet.AbilityCooldown(); cd > 0 {
			m.setMessage(fmt.Sprintf("⏳ %s ready in %.0fs", a.Name, cd))
		} else {
			m.setMessage(fmt.Sprintf("%s can't use %s right now", m.Pet.Name, a.Name))
		}
		return m, nil
	}
	m.setMessage("✨ " + msg)
	m.startAnimation(AnimAbility)
	return m, animTick(m.Animation.StartTime)
}

func (m Model) updateItemMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.InItemMenu = false
	case "up", "k":
		if m.ItemChoice > 0 {
			m.ItemChoice--
		}
	case "down", "j":
		if m.ItemChoice < len(item.Catalog)-1 {
			m.ItemChoice++
		}
	case "enter", " ":
		m.InItemMenu = false
		return m.useItem(item.Catalog[m.ItemChoice])
	}
	return m, nil
}

func (m Model) updateLocationMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.InLocationMenu = false
	case "up", "k":
		if m.LocationChoice > 0 {
			m.LocationChoice--
		}
	case "down", "j":
		if m.LocationChoice < len(world.Locations)-1 {
			m.LocationChoice++
		}
	case "enter", " ":
		m.InLocationMenu = false
		m.Location = world.Locations[m.LocationChoice]
		log.Printf("Moved %s to %s", m.Pet.Name, m.Location.Name)
		m.setMessage("🧭 Welcome to " + m.Location.Name)
	}
	return m, nil
}

func (m *Model) quit() tea.Cmd {
	m.Quitting = true
	m.save()
	return tea.Quit
}

func (m *Model) save() {
	if m.Store == nil {
		return
	}
	if err := m.Store.Save(context.Background(), save.Capture(m.Pet)); err != nil {
		log.Printf("Error saving state: %v", err)
		m.setMessage("⚠️ Save failed")
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(MessageDuration)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: pet.TimeNow(),
	}
}
