package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/freebusy/freebusy/internal/app"
	"github.com/freebusy/freebusy/internal/config"
	"github.com/freebusy/freebusy/internal/database"
	"github.com/freebusy/freebusy/internal/utils"
	"github.com/freebusy/freebusy/pkg/availability"
	"github.com/freebusy/freebusy/pkg/calendar"
	"github.com/freebusy/freebusy/pkg/google"
	"github.com/freebusy/freebusy/pkg/sink"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cliApp := &cli.App{
		Name:  "freebusy",
		Usage: "Summarize busy and available work hours from calendar events.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "./config/application.yaml", Usage: "Path to the configuration file."},
		},
		Commands: []*cli.Command{
			reportCommand(),
			scheduleCommand(),
			calendarsCommand(),
			syncCommand(),
			authCommand(),
			serveCommand(),
		},
		DefaultCommand: "report",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Build the busy/available report and write it to the configured sink.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Usage: "Override the configured lookahead day count."},
			&cli.StringFlag{Name: "output", Usage: "Override the output target (clipboard, file or stdout)."},
			&cli.BoolFlag{Name: "strict", Usage: "Override strict window clipping (use --strict=false for the legacy behavior)."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			db, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			service := availability.NewService(store, cfg, &utils.SystemClock{})
			report, err := service.BuildReport(c.Context)
			if err != nil {
				return err
			}

			text, err := availability.NewTextReportRenderer(cfg.ReferenceLocation()).RenderReport(report)
			if err != nil {
				return err
			}
			return writeToSink(c, cfg, text)
		},
	}
}

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Build the per-day event listing and write it to the configured sink.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Usage: "Override the configured lookahead day count."},
			&cli.StringFlag{Name: "output", Usage: "Override the output target (clipboard, file or stdout)."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			db, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			service := availability.NewService(store, cfg, &utils.SystemClock{})
			schedule, err := service.BuildSchedule(c.Context)
			if err != nil {
				return err
			}

			text, err := availability.NewTextScheduleRenderer().RenderSchedule(schedule)
			if err != nil {
				return err
			}
			return writeToSink(c, cfg, text)
		},
	}
}

func calendarsCommand() *cli.Command {
	return &cli.Command{
		Name:  "calendars",
		Usage: "List the calendars in the local event store.",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			db, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			calendars, err := store.ListCalendars(c.Context)
			if err != nil {
				return err
			}

			fmt.Println("ID\tCALENDAR NAME")
			for _, info := range calendars {
				fmt.Printf("%d\t%s\n", info.ID, info.Title)
			}
			return nil
		},
	}
}

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Import a Google Calendar range into the local event store.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "days", Usage: "Override the configured lookahead day count."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			db, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			client, err := google.NewCalendarClient(c.Context, cfg.Google)
			if err != nil {
				return err
			}
			importer := google.NewImporter(client, store, "Google: "+cfg.Google.CalendarId)

			now := time.Now()
			to := now.Add(time.Duration(cfg.Availability.LookaheadDays) * 24 * time.Hour)
			count, err := importer.Import(c.Context, now, to)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d events.\n", count)
			return nil
		},
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authenticate with Google and save a token for the sync command.",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			fmt.Printf("Go to the following link in your browser then type the authorization code:\n%s\n", google.AuthURL(cfg.Google))
			fmt.Print("Enter Authorization Code: ")
			reader := bufio.NewReader(os.Stdin)
			authCode, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("could not read authorization code: %w", err)
			}

			if err := google.ExchangeAndSave(c.Context, cfg.Google, strings.TrimSpace(authCode)); err != nil {
				return err
			}
			fmt.Printf("Token saved to %s.\n", cfg.Google.TokenFile)
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API.",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}
}

func loadConfig(c *cli.Context) (config.Application, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Application{}, err
	}

	if c.IsSet("days") {
		cfg.Availability.LookaheadDays = c.Int("days")
	}
	if c.IsSet("output") {
		cfg.Output.Target = c.String("output")
	}
	if c.IsSet("strict") {
		cfg.Availability.StrictWindow = c.Bool("strict")
	}
	// Flag overrides go through the same startup validation as file and
	// env values.
	if err := cfg.Validate(); err != nil {
		return config.Application{}, err
	}
	return cfg, nil
}

func openStore(cfg config.Application) (*sql.DB, calendar.EventStore, error) {
	db, err := database.Open(cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(cfg.Store); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, calendar.NewEventStore(db, cfg.Calendars), nil
}

func writeToSink(c *cli.Context, cfg config.Application, text string) error {
	out, err := sink.New(cfg.Output)
	if err != nil {
		return err
	}
	return out.Write(c.Context, text)
}
