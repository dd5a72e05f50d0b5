// Command holidaysri is the terminal client for the Holidaysri classifieds
// marketplace: publish and edit category listings, upload images to the
// asset host, browse details and reviews, and manage your own posts.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/holidaysri/holidaysri-client/config"
	"github.com/holidaysri/holidaysri-client/internal/api"
	"github.com/holidaysri/holidaysri-client/internal/catalog"
	"github.com/holidaysri/holidaysri-client/internal/session"
	"github.com/holidaysri/holidaysri-client/internal/uploader"
	"github.com/holidaysri/holidaysri-client/pkg/logger"
)

// env bundles everything a command needs, built once per invocation
type env struct {
	cfg      *config.Config
	sessions *session.Store
	backend  *api.Client
	uploads  *uploader.Client
}

func buildEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.AppEnv,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	sessions := session.NewStore(cfg.Session.TokenFile)
	return &env{
		cfg:      cfg,
		sessions: sessions,
		backend:  api.New(cfg.API.BaseURL, sessions),
		uploads:  uploader.New(cfg.Cloudinary.BaseURL, cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset),
	}, nil
}

func main() {
	app := &cli.App{
		Name:  "holidaysri",
		Usage: "publish and manage Holidaysri marketplace listings",
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			publishCommand(),
			editCommand(),
			showCommand(),
			reviewCommand(),
			myPostsCommand(),
			provincesCommand(),
			categoriesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "list the listing categories and their form fields",
		Action: func(c *cli.Context) error {
			for _, slug := range catalog.Slugs() {
				schema, err := catalog.Get(slug)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s (max %d images)\n", schema.Slug, schema.Title, schema.ImageCap)
				for _, f := range schema.Fields {
					required := ""
					if f.Required {
						required = " (required)"
					}
					fmt.Printf("  --field %s=<%s>%s\n", f.Name, f.Kind, required)
				}
				for _, a := range schema.ArrayFields {
					fmt.Printf("  --toggle %s=<one of: %v>\n", a.Name, a.Options)
				}
			}
			return nil
		},
	}
}
