package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/goodnatureofminers/featuregate/internal/feature"
)

type catalogCommand struct {
	app *app
}

func (c *catalogCommand) Execute([]string) error {
	features, err := c.app.catalog()
	if err != nil {
		return err
	}
	if c.app.opts.JSON {
		return c.app.printJSON(features.Entries())
	}
	return printEntries(c.app, features.Entries())
}

func printEntries(a *app, entries []feature.Entry) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Description)
	}
	return w.Flush()
}

type identityCommand struct {
	app *app
}

type identityView struct {
	Identity feature.Digest `json:"identity"`
	Features int            `json:"features"`
}

func (c *identityCommand) Execute([]string) error {
	features, err := c.app.catalog()
	if err != nil {
		return err
	}
	if c.app.opts.JSON {
		return c.app.printJSON(identityView{Identity: features.Identity(), Features: features.Len()})
	}
	_, err = fmt.Fprintln(c.app.out, features.Identity())
	return err
}
