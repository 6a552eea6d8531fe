// Copyright 2025 FOS-Agri
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/fosagri/assist"
	"github.com/fosagri/assist/ai"
	"github.com/fosagri/assist/catalog"
	"github.com/fosagri/assist/search"
)

func main() {
	// Optional .env file for host/model/token settings.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "assist",
		Usage:  "FOS-Agri knowledge search and AI assistant",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the knowledge catalog",
				ArgsUsage: "[query]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Path to a catalog JSON file (default: embedded dataset)",
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Category facet (prestations, club, education, logement, partenaires, documents)",
						Value:   catalog.CategoryAll,
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Type facet (page, pdf, partner)",
						Value:   string(catalog.TypeAll),
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Log ranking steps",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Ask the AI assistant a single question (web search allowed)",
				ArgsUsage: "[question]",
				Action:    askCommand,
				Flags:     aiFlags(),
			},
			{
				Name:   "chat",
				Usage:  "Chat with the AI assistant (type /quit to exit)",
				Action: chatCommand,
				Flags:  aiFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Usage:   "OpenAI-compatible API host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"ASSIST_AI_HOST"},
		},
		&cli.StringFlag{
			Name:    "model",
			Usage:   "Model identifier",
			Value:   "qwen2.5:3b",
			EnvVars: []string{"ASSIST_AI_MODEL"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token",
			Value:   "none",
			EnvVars: []string{"ASSIST_AI_TOKEN"},
		},
	}
}

func loadCatalog(c *cli.Context) (*catalog.Catalog, error) {
	if path := c.String("catalog"); path != "" {
		cat, err := catalog.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		return cat, nil
	}
	return catalog.Default()
}

func searchCommand(c *cli.Context) error {
	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}

	query := strings.Join(c.Args().Slice(), " ")
	category := c.String("category")
	entryType := catalog.EntryType(c.String("type"))

	var monitor search.RankMonitor
	if c.Bool("verbose") {
		monitor = &logMonitor{logger: slog.Default().With("component", "search")}
	}

	results := search.SearchWithMonitor(cat, query, category, entryType, monitor)

	fmt.Printf("%d résultat(s)\n", len(results))
	for _, r := range results {
		badge := "Page Web"
		switch r.Entry.Type {
		case catalog.EntryTypePDF:
			badge = "PDF"
		case catalog.EntryTypePartner:
			badge = "Partenaire"
		}
		if strings.TrimSpace(query) == "" {
			fmt.Printf("- [%s] %s\n  %s\n", badge, r.Entry.Title, r.Entry.URL)
			continue
		}
		fmt.Printf("- [%s] %s (%d%%)\n  %s\n", badge, r.Entry.Title, r.RelevancePercent(), r.Entry.URL)
	}
	return nil
}

func newEngine(c *cli.Context) (*assist.Engine, error) {
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithToken(c.String("token")),
	)
	return assist.New(assist.WithCatalog(cat), assist.WithAIConfig(cfg))
}

func askCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		fmt.Println("Suggestions:")
		for _, s := range engine.Catalog().Suggestions {
			fmt.Printf("- %s\n", s)
		}
		return nil
	}

	result := engine.Orchestrator().AskOnce(context.Background(), query)
	fmt.Println(result.Response)
	if result.WebEvidence != "" {
		fmt.Println("(Recherche web incluse)")
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	session, err := engine.NewSession()
	if err != nil {
		return err
	}

	fmt.Println("Assistant FOS-Agri. Tapez /quit pour quitter.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" {
			break
		}
		result, err := session.Submit(context.Background(), line)
		if err != nil {
			return err
		}
		if result == nil {
			continue
		}
		fmt.Println(result.Response)
	}
	return scanner.Err()
}

// logMonitor logs ranking steps for the --verbose flag.
type logMonitor struct {
	logger *slog.Logger
}

func (m *logMonitor) Start(query, category string, entryType catalog.EntryType) {
	m.logger.Info("search started", "query", query, "category", category, "type", entryType)
}

func (m *logMonitor) AfterFacetFilter(entries []*catalog.Entry) {
	m.logger.Info("facets applied", "remaining", len(entries))
}

func (m *logMonitor) Scored(entry *catalog.Entry, score int) {
	m.logger.Debug("entry scored", "id", entry.ID, "title", entry.Title, "score", score)
}

func (m *logMonitor) Finish(results []search.Result) {
	m.logger.Info("search finished", "results", len(results))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
