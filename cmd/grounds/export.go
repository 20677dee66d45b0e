package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

var (
	flagExportGame   string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export per-player features as CSV",
	Long: `Write one CSV row per player with hit counts, accuracy, reaction time and
their variance across recorded rounds. Accuracy is a fraction in [0, 1];
reaction times are in milliseconds.

Examples:
  grounds export
  grounds export --game gallery -o features.csv`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportGame, "game", "", "Only export this range (default: all)")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "-", "Output file, - for stdout")
}

var featureHeader = []string{
	"player_id", "shots_hit", "shots_fired", "accuracy", "avg_reaction_ms",
	"var_accuracy", "var_reaction_ms", "var_shots_hit", "var_shots_fired",
}

func runExport(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitError("opening results database: %v", err)
	}
	defer store.Close()

	features, err := store.Features(flagExportGame)
	if err != nil {
		store.Close()
		exitError("computing features: %v", err)
	}

	var out io.Writer = os.Stdout
	if flagExportOutput != "-" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			store.Close()
			exitError("creating %s: %v", flagExportOutput, err)
		}
		defer f.Close()
		out = f
	}

	if err := writeFeatures(out, features); err != nil {
		store.Close()
		exitError("writing CSV: %v", err)
	}
}

func writeFeatures(w io.Writer, features []storage.PlayerFeatures) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(featureHeader); err != nil {
		return err
	}
	for _, f := range features {
		row := []string{
			f.Player,
			strconv.Itoa(f.ShotsHit),
			strconv.Itoa(f.ShotsFired),
			formatFloat(f.Accuracy),
			formatFloat(f.AvgReactionMs),
			formatFloat(f.VarAccuracy),
			formatFloat(f.VarReactionMs),
			formatFloat(f.VarShotsHit),
			formatFloat(f.VarShotsFired),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
