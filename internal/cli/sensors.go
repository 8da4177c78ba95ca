package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sysgraph/internal/config"
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/sensors"
	"github.com/rileyhilliard/sysgraph/internal/ui"
	"github.com/spf13/cobra"
)

// maxListedSeries caps the series names shown per kind in the overview.
const maxListedSeries = 4

var sensorsJSON bool

// sensorsCmd probes which kinds can be graphed here.
var sensorsCmd = &cobra.Command{
	Use:   "sensors [kind]",
	Short: "List graph kinds and the series they find on this machine",
	Long: `Probe every graph kind and report the series it would draw, or why it can't.

With a kind, list that kind's series with one sampled value each.

Examples:
  sysgraph sensors
  sysgraph sensors net
  sysgraph sensors --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		probe := sensors.NewProbe(sensors.DefaultMaxAge)
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			err := showKind(cmd.Context(), out, probe, sensors.Kind(args[0]), cfg.CommandDefs(), sensorsJSON)
			if err != nil && sensorsJSON {
				if werr := WriteJSONFromError(out, err); werr != nil {
					return werr
				}
				return errors.NewExitError(1)
			}
			return err
		}

		reports := probeKinds(cmd.Context(), probe, sensors.Kinds(), cfg.CommandDefs())
		if sensorsJSON {
			return WriteJSONSuccess(out, reports)
		}
		fmt.Fprint(out, ui.RenderHeader(ui.HeaderInfo{Version: formatVersion(version), Tagline: "available graph kinds"}))
		fmt.Fprint(out, ui.RenderProbeTable(probeRows(reports)))
		return nil
	},
}

func init() {
	sensorsCmd.Flags().BoolVar(&sensorsJSON, "json", false, "print the report as JSON")
}

// KindReport is the probe result of one kind.
type KindReport struct {
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Series      []string   `json:"series,omitempty"`
	Error       *JSONError `json:"error,omitempty"`
}

// probeKinds catalogs each kind without sampling it.
func probeKinds(ctx context.Context, cat cataloger, kinds []sensors.Kind, commands []sensors.CommandDef) []KindReport {
	reports := make([]KindReport, 0, len(kinds))
	for _, kind := range kinds {
		r := KindReport{Kind: string(kind)}
		info, err := sensors.Describe(kind)
		if err != nil {
			r.Error = ErrorToJSON(err)
			reports = append(reports, r)
			continue
		}
		r.Title, r.Description = info.Title, info.Description

		defs, err := cat.Catalog(ctx, kind, commands)
		if err != nil {
			r.Error = ErrorToJSON(err)
		}
		for _, s := range defs {
			r.Series = append(r.Series, s.Name)
		}
		reports = append(reports, r)
	}
	return reports
}

func probeRows(reports []KindReport) []ui.ProbeRow {
	rows := make([]ui.ProbeRow, len(reports))
	for i, r := range reports {
		row := ui.ProbeRow{Kind: r.Kind, OK: r.Error == nil}
		if r.Error != nil {
			row.Message = r.Error.Message
			row.Hint = r.Error.Suggestion
		} else {
			row.Message = summarizeSeries(r.Series)
		}
		rows[i] = row
	}
	return rows
}

// summarizeSeries renders "3 series: a, b, c", eliding long lists.
func summarizeSeries(names []string) string {
	shown := names
	more := ""
	if len(names) > maxListedSeries {
		shown = names[:maxListedSeries]
		more = fmt.Sprintf(", +%d more", len(names)-maxListedSeries)
	}
	return fmt.Sprintf("%d series: %s%s", len(names), strings.Join(shown, ", "), more)
}

// SeriesReport is one sampled series of a kind.
type SeriesReport struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Text  string   `json:"text"`
	Error string   `json:"error,omitempty"`
}

// showKind samples every series of kind once and prints a table.
func showKind(ctx context.Context, out io.Writer, cat cataloger, kind sensors.Kind, commands []sensors.CommandDef, asJSON bool) error {
	info, err := sensors.Describe(kind)
	if err != nil {
		return err
	}
	defs, err := cat.Catalog(ctx, kind, commands)
	if err != nil {
		return err
	}

	reports := make([]SeriesReport, len(defs))
	for i, s := range defs {
		r := SeriesReport{ID: s.ID, Name: s.Name}
		v, err := s.Source.Sample(ctx)
		if err != nil {
			r.Error = err.Error()
			r.Text = ui.SymbolFail + " " + r.Error
		} else {
			r.Value = &v
			r.Text = info.Format(v)
		}
		reports[i] = r
	}

	if asJSON {
		return WriteJSONSuccess(out, reports)
	}

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{strconv.Itoa(r.ID), r.Name, r.Text}
	}
	fmt.Fprintf(out, "%s: %s\n\n", info.Title, info.Description)
	fmt.Fprintln(out, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "ID", Width: 4},
		{Title: "Series", Width: 16},
		{Title: "Value", Width: 40},
	}, rows))
	return nil
}
