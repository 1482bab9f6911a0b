package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/internal/model"
)

var analyzeLang string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Run a one-shot analysis and print the report JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		target, err := url.Parse(args[0])
		if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
			return eris.Errorf("invalid url %q: must be absolute http or https", args[0])
		}

		env, err := initApp(ctx, "analyze")
		if err != nil {
			return err
		}
		defer env.Close()

		quota := env.Ledger.Check(ctx)
		if !quota.Allowed {
			return eris.Errorf("daily limit of %d analyses reached", quota.Limit)
		}

		result, err := env.Analyzer.Analyze(ctx, target.String(), analyzeLang)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		if err := env.Ledger.Consume(ctx); err != nil {
			zap.L().Warn("quota not recorded", zap.Error(err))
		}

		now := time.Now().UTC()
		saved := model.SavedAnalysis{
			ID:     strconv.FormatInt(now.UnixNano(), 10),
			URL:    target.String(),
			Date:   now,
			Result: result,
		}
		if err := env.Store.SaveAnalysis(ctx, saved); err != nil {
			zap.L().Warn("analysis not persisted", zap.Error(err))
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "fr", "report language (fr or en)")
	rootCmd.AddCommand(analyzeCmd)
}
