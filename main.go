package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"animora/internal/balancing"
	"animora/internal/item"
	"animora/internal/pet"
	"animora/internal/save"
	"animora/internal/ui"
	"animora/internal/world"
)

type options struct {
	name      string
	petType   string
	balancing string
	savePath  string
	store     string
	location  string
	stats     bool
	fresh     bool
	list      bool
	use       string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("animora", flag.ContinueOnError)
	fs.StringVar(&o.name, "name", "", "pet name (also selects the save slot for the sqlite store)")
	fs.StringVar(&o.petType, "type", balancing.Dog.String(), "pet type for a new pet")
	fs.StringVar(&o.balancing, "balancing", "", "YAML balancing file (defaults built in)")
	fs.StringVar(&o.savePath, "save", "", "save file or database path")
	fs.StringVar(&o.store, "store", save.KindJSON, "save store: json or sqlite")
	fs.StringVar(&o.location, "location", world.DefaultLocation, "starting location")
	fs.BoolVar(&o.stats, "stats", false, "show the stats card and exit")
	fs.BoolVar(&o.fresh, "new", false, "adopt a new pet, replacing the save")
	fs.BoolVar(&o.list, "list", false, "list saved pets and exit")
	fs.StringVar(&o.use, "use", "", "give the pet an item by name, save and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// setupLogging sends log output to path so it does not draw over the UI
func setupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// loadPet restores the saved pet, or adopts a new one when there is no save
// or a fresh start was asked for.
func loadPet(ctx context.Context, store save.Store, reg *balancing.Registry, o options) (*pet.Pet, error) {
	if !o.fresh {
		rec, err := store.Load(ctx)
		switch {
		case err == nil:
			log.Printf("Loaded %s the %s (saved %s)", rec.PetName, rec.PetType, rec.SavedAt.Format("2006-01-02 15:04"))
			return rec.Restore(reg)
		case errors.Is(err, save.ErrNoSave):
			log.Printf("No saved pet found, adopting a new one")
		default:
			return nil, err
		}
	}

	t, err := balancing.ParsePetType(o.petType)
	if err != nil {
		return nil, err
	}
	p := pet.New(o.name, t, reg)
	if err := store.Save(ctx, save.Capture(p)); err != nil {
		return nil, err
	}
	return p, nil
}

// listPets prints the saved pets, most recent first
func listPets(ctx context.Context, store save.Store, w io.Writer) error {
	var names []string
	if s, ok := store.(*save.SQLiteStore); ok {
		var err error
		if names, err = s.Names(ctx); err != nil {
			return fmt.Errorf("list pets: %w", err)
		}
	} else {
		rec, err := store.Load(ctx)
		switch {
		case err == nil:
			names = append(names, rec.PetName)
		case !errors.Is(err, save.ErrNoSave):
			return err
		}
	}

	if len(names) == 0 {
		fmt.Fprintln(w, "No saved pets")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

// useItem gives the pet a catalog item outside the UI and saves the result
func useItem(ctx context.Context, store save.Store, p *pet.Pet, name string, w io.Writer) error {
	it, ok := item.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown item %q", name)
	}
	if !item.Use(p, it) {
		return fmt.Errorf("%s is busy %s", p.Name, p.Activity())
	}
	fmt.Fprintf(w, "%s %s used %s. %s is feeling %s\n", it.Emoji, p.Name, it.Name, p.Name, p.Mood())
	return store.Save(ctx, save.Capture(p))
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(filepath.Join(save.ConfigDir(), "animora.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()

	reg, err := balancing.LoadRegistry(o.balancing)
	if err != nil {
		return err
	}

	loc, ok := world.LookupLocation(o.location)
	if !ok {
		return fmt.Errorf("unknown location %q", o.location)
	}

	store, err := save.Open(o.store, o.savePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if s, ok := store.(*save.SQLiteStore); ok {
		s.Name = o.name
	}

	ctx := context.Background()
	if o.list {
		return listPets(ctx, store, os.Stdout)
	}

	p, err := loadPet(ctx, store, reg, o)
	if err != nil {
		return err
	}

	if o.use != "" {
		return useItem(ctx, store, p, o.use, os.Stdout)
	}

	if o.stats {
		return ui.DisplayStats(p)
	}
	return ui.Run(ui.NewModel(p, world.NewClock(), loc, store))
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
