package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/morphic-dev/morphic/internal/config"
	"github.com/morphic-dev/morphic/pkg/component"
	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/schema"
	"github.com/morphic-dev/morphic/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server with the demo counter app",
		Long: `Start the morphic server.

Serves the built-in counter component so a fresh checkout has something
to click on. Configuration comes from morphic.json in the working
directory (or any parent); flags override it.

Examples:
  morphic serve
  morphic serve --port=8080
  morphic serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from morphic.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from morphic.json)")

	return cmd
}

func runServe(port int, host string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		cfg = config.New()
	}
	if port != 0 {
		cfg.Port = port
	}
	if host != "" {
		cfg.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := server.New(&server.Config{
		Address:   cfg.Address(),
		StaticDir: cfg.StaticPath(),
		Metrics:   cfg.Metrics,
		Tracing:   cfg.Tracing,
		Logger:    logger,
	}, counterRoot)

	printBanner()
	info("listening on %s", cfg.URL())
	if cfg.Metrics {
		info("metrics on %s/metrics", cfg.URL())
	}
	return srv.Run(context.Background())
}

// counterSchema declares the demo component's props: a reflected,
// observable count with a change event, a label, and a default style
// that survives re-renders.
var counterSchema = schema.Config{
	{Name: "count", Type: schema.TypeNumber, Default: float64(0), Attribute: true, Event: "count-changed"},
	{Name: "label", Type: schema.TypeString, Default: "Clicks", Attribute: true},
	{Name: "style", Native: true, Default: map[string]string{
		"display":     "block",
		"font-family": "sans-serif",
	}},
}

type counter struct {
	c *component.Controller
}

func (ct *counter) Bind(c *component.Controller) { ct.c = c }

func (ct *counter) Render() any {
	doc := ct.c.Document()
	count, _ := ct.c.Prop("count").(float64)
	label, _ := ct.c.Prop("label").(string)

	return []*dom.Node{
		doc.El("p",
			dom.Attr{Key: "id", Value: "count-label"},
			fmt.Sprintf("%s: %s", label, strconv.FormatFloat(count, 'f', -1, 64)),
		),
		doc.El("button",
			dom.Attr{Key: "id", Value: "increment"},
			dom.On{Name: "click", Fn: func(dom.Event) {
				n, _ := ct.c.PeekProp("count").(float64)
				ct.c.SetProp("count", n+1)
			}},
			"+1",
		),
		doc.El("button",
			dom.Attr{Key: "id", Value: "reset"},
			dom.On{Name: "click", Fn: func(dom.Event) {
				ct.c.SetProp("count", float64(0))
			}},
			"Reset",
		),
	}
}

func counterRoot(doc *dom.Document) *dom.Node {
	return component.New(doc, "morphic-counter", counterSchema,
		map[string]any{"id": "counter"}, &counter{})
}
