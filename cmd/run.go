package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/app"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/config"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/logger"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/selfupdate"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/store"
)

// env is what every command needs: configuration, a logger, the
// credential store and an API client that refreshes through it.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	creds  *auth.Store
	client *api.Client
	auth   *auth.Service
}

// newEnv loads configuration and wires the shared services. Logs go to w.
func newEnv(cmd *cobra.Command, w io.Writer) (*env, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}
	return envFrom(cfg, w)
}

func envFrom(cfg *config.Config, w io.Writer) (*env, error) {
	var err error
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, w)
	i18n.SetLogger(log)
	if err := i18n.Init(cfg.Lang); err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	credPath := cfg.CredentialsPath
	if credPath == "" {
		if credPath, err = auth.DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolve credentials path: %w", err)
		}
	}
	creds := auth.NewStore(credPath)
	if err := creds.Init(); err != nil {
		log.Warn().Err(err).Str("path", credPath).Msg("credentials unreadable, starting signed out")
	}

	client := api.New(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithCredentials(creds),
		api.WithLogger(log),
		api.WithUserAgent("matura/"+version),
	)

	log.Debug().
		Str("api", cfg.APIURL).
		Str("config", cfg.ConfigFile).
		Str("lang", cfg.Lang).
		Msg("configuration loaded")

	return &env{
		cfg:    cfg,
		log:    log,
		creds:  creds,
		client: client,
		auth:   auth.NewService(client, creds, log),
	}, nil
}

// openJournal opens the local session journal.
func (e *env) openJournal() (*store.Store, error) {
	dbPath, err := resolveDBPath(e.cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// runApp opens the journal, builds the session controller and launches
// the TUI. Logs go to a file while the TUI owns the terminal.
func runApp(cmd *cobra.Command, opts app.Options) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}
	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	e, err := envFrom(cfg, logFile)
	if err != nil {
		return err
	}

	st, err := e.openJournal()
	if err != nil {
		return err
	}
	defer st.Close()

	ctrl := session.NewController(e.client, e.creds,
		session.WithLogger(e.log),
		session.WithRecorder(st.Journal()),
	)

	ctx := context.Background()
	if last, err := st.LastFilters(ctx); err != nil {
		e.log.Warn().Err(err).Msg("load last filters")
	} else {
		ctrl.SetFilters(last)
	}

	opts.Deps = &screen.Deps{
		Auth:    e.auth,
		Stats:   e.client,
		Session: ctrl,
		History: st.Journal(),
		Filters: st,
		Updates: selfupdate.NewChecker(selfupdate.WithLogger(e.log)),
		Log:     e.log,
		Version: version,
	}

	e.log.Info().Str("version", version).Msg("starting")
	return app.Run(opts)
}
