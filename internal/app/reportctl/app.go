// Package reportctl is the command line front end for the dashboard aggregates.
// It talks to the same reporting sources as the API, so operators can check a
// store or the upstream admin API without starting the server.
package reportctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	reporthttpmapper "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/http/mapper"
	reportports "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

// Options are the global flags that select a reporting source.
type Options struct {
	Source     string
	BackendURL string
	Token      string
}

// ServiceFactory builds the reporting service for the chosen options. The
// returned function releases whatever the service holds.
type ServiceFactory func(ctx context.Context, opts Options) (reportports.Service, func(), error)

// NewApp wires the commands. Output goes to out.
func NewApp(out io.Writer, build ServiceFactory) *cli.App {
	var service reportports.Service
	var release func()
	return &cli.App{
		Name:      "reportctl",
		Usage:     "print back-office dashboard aggregates",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Usage: "memory, postgres or remote", EnvVars: []string{"REPORTING_SOURCE"}},
			&cli.StringFlag{Name: "backend-url", Usage: "base URL of the upstream admin API", EnvVars: []string{"BACKEND_API_URL"}},
			&cli.StringFlag{Name: "token", Usage: "bearer token for the upstream admin API", EnvVars: []string{"BACKEND_API_TOKEN"}},
			&cli.StringFlag{Name: "format", Value: "table", Usage: "table or json"},
		},
		Before: func(c *cli.Context) error {
			format := c.String("format")
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}
			svc, cleanup, err := build(c.Context, Options{
				Source:     c.String("source"),
				BackendURL: c.String("backend-url"),
				Token:      c.String("token"),
			})
			if err != nil {
				return err
			}
			service, release = svc, cleanup
			return nil
		},
		After: func(*cli.Context) error {
			if release != nil {
				release()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "overview",
				Usage: "order count per status",
				Action: func(c *cli.Context) error {
					histogram, err := service.StatusHistogram(c.Context)
					if err != nil {
						return err
					}
					bars := reporthttpmapper.FromHistogram(histogram)
					return render(c, bars, func(w *tabwriter.Writer) {
						fmt.Fprintln(w, "STATUS\tLABEL\tTOTAL")
						for _, bar := range bars {
							fmt.Fprintf(w, "%s\t%s\t%s\n", bar.OrderStatus, bar.Label, bar.Total)
						}
					})
				},
			},
			{
				Name:  "sales",
				Usage: "monthly delivered sales per payment method",
				Flags: []cli.Flag{&cli.IntFlag{Name: "year", Usage: "calendar year, current year when omitted"}},
				Action: func(c *cli.Context) error {
					series, err := service.MonthlySales(c.Context, c.Int("year"))
					if err != nil {
						return err
					}
					rows := reporthttpmapper.FromMonthlySeries(series)
					return render(c, rows, func(w *tabwriter.Writer) {
						fmt.Fprintln(w, "METHOD\tJAN\tFEB\tMAR\tAPR\tMAY\tJUN\tJUL\tAUG\tSEP\tOCT\tNOV\tDEC")
						for _, row := range rows {
							cells := make([]string, 0, len(row.Data))
							for _, total := range row.Data {
								cells = append(cells, total.String())
							}
							fmt.Fprintf(w, "%s\t%s\n", row.Method, strings.Join(cells, "\t"))
						}
					})
				},
			},
			{
				Name:  "top-selling",
				Usage: "best selling products",
				Flags: []cli.Flag{&cli.IntFlag{Name: "limit", Usage: "number of products, five when omitted"}},
				Action: func(c *cli.Context) error {
					records, err := service.TopSelling(c.Context, c.Int("limit"))
					if err != nil {
						return err
					}
					rows := reporthttpmapper.FromTopSelling(records)
					return render(c, rows, func(w *tabwriter.Writer) {
						fmt.Fprintln(w, "PRODUCT\tSOLD")
						for _, row := range rows {
							fmt.Fprintf(w, "%s\t%d\n", row.Name, row.Sold)
						}
					})
				},
			},
			{
				Name:  "summary",
				Usage: "total revenue, orders, paid orders and products",
				Action: func(c *cli.Context) error {
					summary, err := service.RevenueSummary(c.Context)
					if err != nil {
						return err
					}
					products, err := service.TotalProducts(c.Context)
					if err != nil {
						return err
					}
					out := struct {
						reporthttpmapper.Summary
						TotalProducts int64 `json:"totalProducts"`
					}{Summary: reporthttpmapper.FromSummary(summary), TotalProducts: products}
					return render(c, out, func(w *tabwriter.Writer) {
						fmt.Fprintf(w, "Total revenue\t%s\n", out.TotalRevenue)
						fmt.Fprintf(w, "Total orders\t%d\n", out.TotalOrders)
						fmt.Fprintf(w, "Paid orders\t%d\n", out.TotalPaidOrders)
						fmt.Fprintf(w, "Products\t%d\n", out.TotalProducts)
					})
				},
			},
			{
				Name:  "dashboard",
				Usage: "every aggregate as JSON",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "year"},
					&cli.IntFlag{Name: "limit"},
				},
				Action: func(c *cli.Context) error {
					dashboard, err := service.Dashboard(c.Context, c.Int("year"), c.Int("limit"))
					if err != nil {
						return err
					}
					return writeJSON(c.App.Writer, reporthttpmapper.FromDashboard(dashboard))
				},
			},
		},
	}
}

func render(c *cli.Context, payload any, table func(w *tabwriter.Writer)) error {
	if c.String("format") == "json" {
		return writeJSON(c.App.Writer, payload)
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	table(w)
	return w.Flush()
}

func writeJSON(out io.Writer, payload any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
