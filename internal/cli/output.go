package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
	"github.com/Belphemur/ShowBrowser/v2/internal/view"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

// table is the text rendering of a result: a header and one row per item
type table struct {
	header []string
	rows   [][]string
}

func printResult(cmd *cobra.Command, v any, t table) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputText:
		return writeTable(out, t)
	default:
		return validateOutput(format)
	}
}

// validateOutput rejects unknown --output values before any lookup is made
func validateOutput(format string) error {
	switch format {
	case outputJSON, outputYAML, outputText:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, outputJSON, outputYAML, outputText)
}

func writeTable(out io.Writer, t table) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.header, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func showRows(shows []models.Show) table {
	t := table{header: []string{"ID", "NAME", "IMAGE"}}
	for _, s := range shows {
		t.rows = append(t.rows, []string{strconv.Itoa(s.ID), s.Name, s.Image})
	}
	return t
}

func episodeRows(episodes []models.Episode) table {
	t := table{header: []string{"ID", "EPISODE"}}
	for _, e := range episodes {
		t.rows = append(t.rows, []string{strconv.Itoa(e.ID), view.EpisodeLabel(e)})
	}
	return t
}

func genreRows(genres []string) table {
	t := table{header: []string{"GENRE"}}
	for _, g := range genres {
		t.rows = append(t.rows, []string{g})
	}
	return t
}
