package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/internal/analysis"
	"github.com/hyppe-labs/scoriz/internal/contact"
	"github.com/hyppe-labs/scoriz/internal/pagescan"
	"github.com/hyppe-labs/scoriz/internal/store"
	anthropicpkg "github.com/hyppe-labs/scoriz/pkg/anthropic"
	"github.com/hyppe-labs/scoriz/pkg/notion"
)

// appEnv holds the initialized store, quota ledger, and optional
// clients needed by the serve/analyze/analyses/usage commands.
type appEnv struct {
	Store    store.Store
	Ledger   *store.Ledger
	Analyzer *analysis.Analyzer // nil when no Anthropic key is set
	Contacts *contact.Sink      // nil when Notion is not configured
}

// Close releases resources held by the environment.
func (ae *appEnv) Close() {
	if ae.Store != nil {
		_ = ae.Store.Close()
	}
}

// initApp validates the config for the given mode, opens the store,
// runs migrations, and wires the analyzer and contact sink. Callers
// should defer env.Close().
func initApp(ctx context.Context, mode string) (*appEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	ledger := store.NewLedger(st, cfg.Quota.MaxPerDay)

	var analyzer *analysis.Analyzer
	if cfg.Anthropic.Key != "" {
		analyzer = analysis.NewAnalyzer(
			anthropicpkg.NewClient(cfg.Anthropic.Key),
			initScanner(),
			cfg.Anthropic.Model,
			analysis.WithMaxTokens(cfg.Anthropic.MaxTokens),
		)
	} else {
		zap.L().Warn("SCORIZ_ANTHROPIC_KEY not set, analysis disabled")
	}

	var contacts *contact.Sink
	if cfg.Notion.Token != "" && cfg.Notion.ContactDB != "" {
		contacts = contact.NewSink(notion.NewClient(cfg.Notion.Token), cfg.Notion.ContactDB)
	} else {
		zap.L().Debug("notion not configured, contact capture disabled")
	}

	return &appEnv{
		Store:    st,
		Ledger:   ledger,
		Analyzer: analyzer,
		Contacts: contacts,
	}, nil
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, cfg.Store.Pool)
	default:
		return store.NewSQLite(cfg.Store.Path)
	}
}

func initScanner() pagescan.Scanner {
	timeout := time.Duration(cfg.PageScan.TimeoutSecs) * time.Second
	static := pagescan.NewStaticScanner()
	if cfg.PageScan.DisableBrowser {
		zap.L().Info("browser scanning disabled, static scanner only")
		return pagescan.NewChain(static)
	}
	return pagescan.NewChain(pagescan.NewBrowserScanner(timeout), static)
}
