package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"news-api/internal/config"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/repository"
)

// gatewayFactory builds the article source from the loaded configuration.
type gatewayFactory func(cfg config.Config) (repository.ArticleSearcher, error)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// newApp assembles the command tree. Command output goes to out.
func newApp(out io.Writer, factory gatewayFactory) *cli.Command {
	return &cli.Command{
		Name:   "newsctl",
		Usage:  "Query the news article index",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML configuration file",
				Sources: cli.EnvVars("NEWS_API_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: table or json",
				Value: outputTable,
				Validator: func(v string) error {
					if v != outputTable && v != outputJSON {
						return fmt.Errorf("unsupported output format %q", v)
					}
					return nil
				},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Upper bound for the whole command",
				Value: 30 * time.Second,
			},
		},
		Commands: []*cli.Command{
			listCommand(out, factory),
			searchCommand(out, factory),
			getCommand(out, factory),
			statsCommand(out, factory),
			pingCommand(out, factory),
		},
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "Page number (1-based)", Value: 1},
		&cli.IntFlag{Name: "limit", Usage: "Page size", Value: 20},
	}
}

// session is the per-invocation state shared by every subcommand.
type session struct {
	gateway repository.ArticleSearcher
	printer printer
}

// withSession loads config, builds the gateway and runs fn under the
// --timeout deadline.
func withSession(out io.Writer, factory gatewayFactory, fn func(ctx context.Context, cmd *cli.Command, s session) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load(cmd.String("config"))
		if err != nil {
			return err
		}
		gateway, err := factory(cfg)
		if err != nil {
			return fmt.Errorf("create search gateway: %w", err)
		}

		ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
		defer cancel()

		return fn(ctx, cmd, session{
			gateway: gateway,
			printer: printer{out: out, format: cmd.String("output")},
		})
	}
}

func listCommand(out io.Writer, factory gatewayFactory) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List articles, newest first",
		Flags: pageFlags(),
		Action: withSession(out, factory, func(ctx context.Context, cmd *cli.Command, s session) error {
			page, err := s.gateway.ListArticles(ctx, cmd.Int("page"), cmd.Int("limit"))
			if err != nil {
				return fmt.Errorf("list articles: %w", err)
			}
			return s.printer.articlePage(page)
		}),
	}
}

func searchCommand(out io.Writer, factory gatewayFactory) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Full-text search over title, content and category",
		ArgsUsage: "<keyword>",
		Flags:     pageFlags(),
		Action: withSession(out, factory, func(ctx context.Context, cmd *cli.Command, s session) error {
			keyword := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(keyword) == "" {
				return errors.New("search keyword is required")
			}
			page, err := s.gateway.SearchArticles(ctx, keyword, cmd.Int("page"), cmd.Int("limit"))
			if err != nil {
				return fmt.Errorf("search articles: %w", err)
			}
			return s.printer.articlePage(page)
		}),
	}
}

func getCommand(out io.Writer, factory gatewayFactory) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show one article by document id",
		ArgsUsage: "<id>",
		Action: withSession(out, factory, func(ctx context.Context, cmd *cli.Command, s session) error {
			id, err := pathutil.ValidateDocumentID(cmd.Args().First())
			if err != nil {
				return err
			}
			article, err := s.gateway.GetArticleByID(ctx, id)
			if err != nil {
				return fmt.Errorf("get article %s: %w", id, err)
			}
			return s.printer.article(article)
		}),
	}
}

func statsCommand(out io.Writer, factory gatewayFactory) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show dashboard aggregations",
		Action: withSession(out, factory, func(ctx context.Context, cmd *cli.Command, s session) error {
			stats, err := s.gateway.GetDashboardStats(ctx)
			if err != nil {
				return fmt.Errorf("dashboard stats: %w", err)
			}
			return s.printer.dashboard(stats)
		}),
	}
}

func pingCommand(out io.Writer, factory gatewayFactory) *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check that the search engine is reachable",
		Action: withSession(out, factory, func(ctx context.Context, cmd *cli.Command, s session) error {
			up := s.gateway.Ping(ctx)
			if err := s.printer.ping(up); err != nil {
				return err
			}
			if !up {
				return errors.New("search engine unreachable")
			}
			return nil
		}),
	}
}
