package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bnema/mockbrowse/internal/domain/entity"
)

var linksJSON bool

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List the browser's bookmark grids",
	RunE:  runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.Flags().BoolVar(&linksJSON, "json", false, "output as JSON")
}

type linkJSON struct {
	Collection string `json:"collection"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Icon       string `json:"icon"`
}

func runLinks(cmd *cobra.Command, _ []string) error {
	collections := entity.HomeCollections()
	out := cmd.OutOrStdout()

	if linksJSON {
		var rows []linkJSON
		for _, c := range collections {
			for _, e := range c.Entries {
				rows = append(rows, linkJSON{Collection: c.Name, Title: e.Title, URL: e.URL, Icon: e.Icon})
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLLECTION\tTITLE\tURL")
	for _, c := range collections {
		for _, e := range c.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, e.Title, e.URL)
		}
	}
	return w.Flush()
}
