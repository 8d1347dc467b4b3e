package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen       string       `koanf:"listen"`
	Timezone     Timezone     `koanf:"timezone"`
	Availability Availability `koanf:"availability"`
	Calendars    Calendars    `koanf:"calendars"`
	Store        Store        `koanf:"store"`
	Output       Output       `koanf:"output"`
	Google       Google       `koanf:"google"`
}

type Timezone struct {
	// Reference is the zone whose wall clock defines work windows and
	// report times.
	Reference string `koanf:"reference"`
	// Default is substituted when an event carries an unknown zone name.
	Default string `koanf:"default"`
}

type Availability struct {
	LookaheadDays int `koanf:"lookaheaddays"`
	WorkStartHour int `koanf:"workstarthour"`
	WorkEndHour   int `koanf:"workendhour"`
	// StrictWindow clips busy time to the work window. When false, busy
	// minutes between local midnight and the window start survive into
	// the report, keeping the historical symmetric-difference behavior.
	StrictWindow bool `koanf:"strictwindow"`
}

type Calendars struct {
	ShowAll bool    `koanf:"showall"`
	IDs     []int64 `koanf:"ids"`
}

type Store struct {
	Path string `koanf:"path"`
}

type Output struct {
	Target string `koanf:"target"` // clipboard, file or stdout
	Path   string `koanf:"path"`   // used when target is file
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
	TokenFile    string `koanf:"tokenfile"`
	CalendarId   string `koanf:"calendarid"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Listen: ":8181",
		Timezone: Timezone{
			Reference: "America/Toronto",
			Default:   "America/Toronto",
		},
		Availability: Availability{
			LookaheadDays: 7,
			WorkStartHour: 9,
			WorkEndHour:   17,
			StrictWindow:  true,
		},
		Calendars: Calendars{
			ShowAll: true,
		},
		Store: Store{
			Path: "freebusy.db",
		},
		Output: Output{
			Target: "stdout",
		},
		Google: Google{
			TokenFile:  "token.json",
			CalendarId: "primary",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "FREEBUSY_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "FREEBUSY_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if err := app.Validate(); err != nil {
		return Application{}, err
	}

	return app, nil
}

// ErrInvalidRange marks configurations whose work window or lookahead
// cannot produce day windows.
var ErrInvalidRange = errors.New("invalid availability range")

// Validate rejects configurations that would make window generation
// meaningless. It runs once at startup, before any day window exists.
func (a Application) Validate() error {
	av := a.Availability
	if av.WorkStartHour < 0 || av.WorkStartHour > 23 || av.WorkEndHour < 0 || av.WorkEndHour > 23 {
		return fmt.Errorf("%w: work hours must be within 0-23, got %d and %d", ErrInvalidRange, av.WorkStartHour, av.WorkEndHour)
	}
	if av.WorkStartHour >= av.WorkEndHour {
		return fmt.Errorf("%w: workstarthour (%d) must be before workendhour (%d)", ErrInvalidRange, av.WorkStartHour, av.WorkEndHour)
	}
	if av.LookaheadDays < 0 {
		return fmt.Errorf("%w: lookaheaddays must not be negative, got %d", ErrInvalidRange, av.LookaheadDays)
	}
	if _, err := time.LoadLocation(a.Timezone.Reference); err != nil {
		return fmt.Errorf("unknown reference timezone %q: %w", a.Timezone.Reference, err)
	}
	if _, err := time.LoadLocation(a.Timezone.Default); err != nil {
		return fmt.Errorf("unknown default timezone %q: %w", a.Timezone.Default, err)
	}
	switch a.Output.Target {
	case "clipboard", "stdout":
	case "file":
		if a.Output.Path == "" {
			return fmt.Errorf("output.path is required when output.target is file")
		}
	default:
		return fmt.Errorf("unknown output target %q", a.Output.Target)
	}
	return nil
}

// ReferenceLocation resolves the reference timezone. Validate has
// already checked that the name is known.
func (a Application) ReferenceLocation() *time.Location {
	loc, _ := time.LoadLocation(a.Timezone.Reference)
	return loc
}

// DefaultLocation resolves the fallback timezone for events carrying
// an unknown zone name.
func (a Application) DefaultLocation() *time.Location {
	loc, _ := time.LoadLocation(a.Timezone.Default)
	return loc
}
