package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/heatmap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/placement"
	"github.com/jengzang/bodymap-backend-go/internal/severity"
)

// renderTable writes rows under header as a text table
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func parseViewFlag(s string) (bodymap.View, error) {
	view, ok := bodymap.ParseView(s)
	if !ok {
		return "", fmt.Errorf("invalid view %q (want front or back)", s)
	}
	return view, nil
}

func newRegionsCmd(opts *RootOptions) *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List catalog regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := bodymap.All()
			if view != "" {
				v, err := parseViewFlag(view)
				if err != nil {
					return err
				}
				regions = bodymap.RegionsForView(v)
			}

			out := cmd.OutOrStdout()
			if opts.OutputFormat == "json" {
				type row struct {
					ID     string `json:"id"`
					Label  string `json:"label"`
					Parent string `json:"parent_region"`
					View   string `json:"view"`
				}
				rows := make([]row, 0, len(regions))
				for _, r := range regions {
					rows = append(rows, row{r.ID, r.Label, r.ParentRegion, string(r.View)})
				}
				return printJSON(out, rows)
			}

			rows := make([][]string, 0, len(regions))
			for _, r := range regions {
				rows = append(rows, []string{
					r.ID, r.Label, r.ParentRegion, string(r.View),
					ftoa(r.Anchor.X, 0) + "," + ftoa(r.Anchor.Y, 0),
				})
			}
			return renderTable(out, []string{"ID", "Label", "Parent", "View", "Anchor"}, rows)
		},
	}
	cmd.Flags().StringVar(&view, "view", "", "only regions of this view (front, back)")
	return cmd
}

func newLabelCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "label <region-id>",
		Short: "Resolve a region id to its display label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			_, known := bodymap.RegionByID(id)
			out := cmd.OutOrStdout()
			if opts.OutputFormat == "json" {
				return printJSON(out, map[string]interface{}{
					"id":            id,
					"label":         bodymap.DisplayLabel(id),
					"known":         known,
					"coarse":        bodymap.IsCoarse(id),
					"parent_region": bodymap.ParentOf(id),
				})
			}
			_, err := fmt.Fprintln(out, bodymap.DisplayLabel(id))
			return err
		},
	}
}

func newLegendCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Print the severity bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			legend := severity.Legend()
			out := cmd.OutOrStdout()
			if opts.OutputFormat == "json" {
				return printJSON(out, legend)
			}
			rows := make([][]string, 0, len(legend))
			for _, b := range legend {
				rows = append(rows, []string{b.Label, b.Range, b.Color})
			}
			return renderTable(out, []string{"Band", "Range", "Color"}, rows)
		},
	}
}

func newHeatmapCmd(opts *RootOptions) *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Aggregate symptom records per region",
		Long:  "Aggregate symptom records per region. With --view, entries are split into regions drawable on that view and unmapped ids.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := opts.readRecords(cmd)
			if err != nil {
				return err
			}
			hm := heatmap.Compute(records)
			out := cmd.OutOrStdout()

			if view == "" {
				entries := heatmap.Entries(hm)
				if opts.OutputFormat == "json" {
					return printJSON(out, entries)
				}
				return printEntries(out, entries)
			}

			v, err := parseViewFlag(view)
			if err != nil {
				return err
			}
			regions, unmapped := heatmap.SplitByView(hm, v)
			if opts.OutputFormat == "json" {
				return printJSON(out, map[string]interface{}{
					"view":      v,
					"regions":   regions,
					"unmapped":  unmapped,
					"max_count": heatmap.MaxCount(hm),
				})
			}
			if err := printEntries(out, regions); err != nil {
				return err
			}
			if len(unmapped) > 0 {
				fmt.Fprintln(out, "\nunmapped:")
				return printEntries(out, unmapped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&view, "view", "", "split entries for this view (front, back)")
	return cmd
}

func printEntries(w io.Writer, entries []models.HeatmapEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.RegionID,
			bodymap.DisplayLabel(e.RegionID),
			strconv.Itoa(e.Count),
			ftoa(e.AvgSeverity, 2),
			strconv.Itoa(e.MaxSeverity),
			ftoa(e.NormalizedDensity, 2),
			e.FillColor,
			ftoa(e.FillOpacity, 3),
		})
	}
	return renderTable(w, []string{"Region", "Label", "Count", "Avg", "Max", "Density", "Color", "Opacity"}, rows)
}

func newMarkersCmd(opts *RootOptions) *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Compute marker positions for one view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseViewFlag(view)
			if err != nil {
				return err
			}
			records, err := opts.readRecords(cmd)
			if err != nil {
				return err
			}
			markers := placement.Place(records, v)
			out := cmd.OutOrStdout()
			if opts.OutputFormat == "json" {
				return printJSON(out, markers)
			}
			rows := make([][]string, 0, len(markers))
			for _, m := range markers {
				source := "stored"
				if m.Fallback {
					source = "fallback"
				}
				rows = append(rows, []string{
					m.Symptom.ID, m.Symptom.RegionID, ftoa(m.X, 2), ftoa(m.Y, 2), m.Color, source,
				})
			}
			return renderTable(out, []string{"Symptom", "Region", "X", "Y", "Color", "Source"}, rows)
		},
	}
	cmd.Flags().StringVar(&view, "view", string(bodymap.Front), "view to place markers on (front, back)")
	return cmd
}

func newBreakdownCmd(opts *RootOptions) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Group symptom records by type or body part",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := heatmap.GroupingByName(by)
			if !ok {
				return fmt.Errorf("invalid grouping %q (want type or body_part)", by)
			}
			records, err := opts.readRecords(cmd)
			if err != nil {
				return err
			}
			b := heatmap.Breakdown(records, g)
			out := cmd.OutOrStdout()
			if opts.OutputFormat == "json" {
				return printJSON(out, b)
			}
			rows := make([][]string, 0, len(b.Rows))
			for _, r := range b.Rows {
				rows = append(rows, []string{
					r.Key, r.Label, strconv.Itoa(r.Count), ftoa(r.AvgSeverity, 2), strconv.Itoa(r.MaxSeverity),
				})
			}
			if err := renderTable(out, []string{"Key", "Label", "Count", "Avg", "Max"}, rows); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\nTotal symptoms: %d\nAverage severity: %.2f\n", b.TotalCount, b.AvgSeverity)
			return err
		},
	}
	cmd.Flags().StringVar(&by, "by", heatmap.BySymptomType.Name, "grouping (type, body_part)")
	return cmd
}
