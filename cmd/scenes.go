package cmd

import (
	"bytes"

	"github.com/achilleasa/lumen/scene/demo"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the available demo scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, entry := range demo.Entries() {
		table.Append([]string{entry.Name, entry.Description})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
