package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/internal/report"
)

var analysesCmd = &cobra.Command{
	Use:   "analyses",
	Short: "Manage saved analyses",
}

var analysesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), "store")
		if err != nil {
			return err
		}
		defer env.Close()

		list, err := env.Store.ListAnalyses(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "list analyses")
		}

		if len(list) == 0 {
			fmt.Println("no saved analyses")
			return nil
		}

		fmt.Printf("%-22s %-20s %-8s %s\n", "ID", "DATE", "SCORE", "URL")
		for _, a := range list {
			fmt.Printf("%-22s %-20s %-8.0f %s\n",
				a.ID,
				a.Date.Format("2006-01-02 15:04"),
				a.Result.UXScore,
				a.URL,
			)
		}

		return nil
	},
}

var analysesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), "store")
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Store.DeleteAnalysis(cmd.Context(), args[0]); err != nil {
			return eris.Wrapf(err, "delete analysis %s", args[0])
		}

		zap.L().Info("analysis deleted", zap.String("id", args[0]))
		return nil
	},
}

var exportOut string

var analysesExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved analysis as an XLSX report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), "store")
		if err != nil {
			return err
		}
		defer env.Close()

		list, err := env.Store.ListAnalyses(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "list analyses")
		}

		for _, a := range list {
			if a.ID != args[0] {
				continue
			}

			path := exportOut
			if path == "" {
				path = fmt.Sprintf("analyse-%s.xlsx", a.ID)
			}

			f, err := os.Create(path)
			if err != nil {
				return eris.Wrapf(err, "create %s", path)
			}
			defer f.Close()

			if err := report.WriteXLSX(f, a); err != nil {
				return eris.Wrap(err, "write xlsx")
			}

			fmt.Printf("exported %s\n", path)
			return nil
		}

		return eris.Errorf("analysis %s not found", args[0])
	},
}

func init() {
	analysesExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default analyse-<id>.xlsx)")
	analysesCmd.AddCommand(analysesListCmd, analysesDeleteCmd, analysesExportCmd)
	rootCmd.AddCommand(analysesCmd)
}
