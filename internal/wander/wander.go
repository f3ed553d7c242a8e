package wander

import (
	"strings"

	"animora/internal/pet"
)

// MinWidth is the narrowest lane a Walker will lay out
const MinWidth = 8

// Target defines what the pet can chase across the lane
type Target struct {
	Emoji string
	Name  string
	Speed int // Frames to move 1 position
}

// Available targets (extensible)
var Targets = map[string]Target{
	"butterfly": {Emoji: "🦋", Name: "butterfly", Speed: 3},
	"ball":      {Emoji: "⚽", Name: "ball", Speed: 4},
	"mouse":     {Emoji: "🐁", Name: "mouse", Speed: 2},
}

// Walker moves the pet along a one-row lane. It is purely visual: the pet's
// activity stays Idle while it walks.
type Walker struct {
	Width int
	PetX  int
	GoalX int
	Frame int

	// Catches counts targets the pet has caught
	Catches int

	target  *Target
	targetX int
}

// New returns a walker standing in the middle of a lane of width cells
func New(width int) Walker {
	w := Walker{}
	w.SetWidth(width)
	w.PetX = w.maxX() / 2
	w.GoalX = w.PetX
	return w
}

// SetWidth resizes the lane and keeps everything on it
func (w *Walker) SetWidth(width int) {
	if width < MinWidth {
		width = MinWidth
	}
	w.Width = width
	w.clampPositions()
}

// SetTarget sets the walk goal as a fraction of the lane, in [0,1]
func (w *Walker) SetTarget(frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	w.GoalX = int(frac * float64(w.maxX()))
}

// Chase releases a target just ahead of the pet; the pet follows it until it
// is caught or escapes off the end of the lane.
func (w *Walker) Chase(t Target) {
	if t.Speed <= 0 {
		t.Speed = 1
	}
	w.target = &t
	w.targetX = w.PetX + 5
	w.clampPositions()
}

// Chasing reports whether a target is loose on the lane
func (w *Walker) Chasing() bool {
	return w.target != nil
}

// Arrived reports whether the pet has reached its walk goal
func (w *Walker) Arrived() bool {
	return !w.Chasing() && w.PetX == w.GoalX
}

// Step advances one animation frame
func (w *Walker) Step() {
	w.Frame++

	if w.target != nil {
		// Move target - moves every N frames based on speed
		if w.Frame%w.target.Speed == 0 {
			w.targetX++
			if w.targetX >= w.maxX() {
				w.target = nil
				w.GoalX = w.PetX
				return
			}
		}

		// Pet follows, moving every other frame
		if w.Frame%2 == 0 && w.targetX > w.PetX {
			w.PetX++
		}

		if absInt(w.targetX-w.PetX) <= 1 {
			w.Catches++
			w.target = nil
			w.GoalX = w.PetX
		}
		w.clampPositions()
		return
	}

	if w.Frame%2 != 0 {
		return
	}
	switch {
	case w.PetX < w.GoalX:
		w.PetX++
	case w.PetX > w.GoalX:
		w.PetX--
	}
}

// Distance is how far the chased target is ahead of the pet, 0 when idle
func (w *Walker) Distance() int {
	if w.target == nil {
		return 0
	}
	return w.targetX - w.PetX
}

// Render draws the lane with the pet and any loose target
func (w *Walker) Render(petEmoji string) string {
	lane := make([]rune, w.Width)
	for x := range lane {
		lane[x] = ' '
	}

	place := func(x int, emoji string) {
		for i, r := range []rune(emoji) {
			if x+i >= 0 && x+i < len(lane) {
				lane[x+i] = r
			}
		}
	}
	if w.target != nil {
		place(w.targetX, w.target.Emoji)
	}
	place(w.PetX, petEmoji)

	return strings.TrimRight(string(lane), " ")
}

// Emoji picks the pet face for the lane based on its state and how close it
// is to a chased target.
func Emoji(p *pet.Pet, dist int) string {
	s := p.Stats()

	// About to catch
	if dist != 0 && absInt(dist) <= 2 {
		return "😻"
	}

	// Energy level affects speed emoji
	if s.Energy < 30 {
		return "😴"
	} else if s.Energy > 80 {
		return "😼"
	}

	if s.Hunger < 30 {
		return "🙀"
	}
	if s.Mood < 30 {
		return "😿"
	}
	return "😸"
}

func (w *Walker) clampPositions() {
	max := w.maxX()
	w.PetX = clamp(w.PetX, 0, max)
	w.GoalX = clamp(w.GoalX, 0, max)
	w.targetX = clamp(w.targetX, 0, max)
}

// maxX leaves room for a double-width emoji at the right edge
func (w *Walker) maxX() int {
	if w.Width <= 2 {
		return 0
	}
	return w.Width - 2
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
