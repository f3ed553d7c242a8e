package balancing

import "log"

// Registry resolves each species to exactly one shared Profile. Profiles are
// handed out by pointer and treated as read-only by pets; Edit is the only
// sanctioned mutation.
type Registry struct {
	settings Settings
	profiles map[PetType]*Profile
}

// NewRegistry creates a registry with the given shared settings and any
// configured profiles. Species without a configured profile get their
// default lazily on first Resolve.
func NewRegistry(settings Settings, profiles ...Profile) *Registry {
	r := &Registry{
		settings: settings,
		profiles: make(map[PetType]*Profile),
	}
	for _, p := range profiles {
		r.Register(p)
	}
	return r
}

// Settings returns the shared tuning
func (r *Registry) Settings() Settings {
	return r.settings
}

// Register installs a profile, replacing any existing one for its type
func (r *Registry) Register(p Profile) {
	if !p.Type.Valid() {
		panic("balancing: cannot register profile for " + p.Type.String())
	}
	profile := p
	r.profiles[p.Type] = &profile
}

// Resolve returns the profile for t, creating the default on first use.
// An unknown species is a programming error and panics.
func (r *Registry) Resolve(t PetType) *Profile {
	if p, ok := r.profiles[t]; ok {
		return p
	}
	profile := DefaultProfile(t)
	r.profiles[t] = &profile
	log.Printf("Created default balancing for %s", t)
	return &profile
}

// Edit applies an administrative change to the shared profile for t. Every
// pet of that species observes the change on its next tick.
func (r *Registry) Edit(t PetType, fn func(*Profile)) {
	p := r.Resolve(t)
	fn(p)
	p.Type = t
}

// Len returns how many profiles have been created so far
func (r *Registry) Len() int {
	return len(r.profiles)
}
