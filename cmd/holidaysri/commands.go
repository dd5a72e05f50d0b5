package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/holidaysri/holidaysri-client/internal/catalog"
	"github.com/holidaysri/holidaysri-client/internal/form"
	"github.com/holidaysri/holidaysri-client/internal/location"
	"github.com/holidaysri/holidaysri-client/internal/viewer"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "store a session token (or obtain a dev token from the stub backend)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Usage: "store an existing bearer token"},
			&cli.StringFlag{Name: "name", Usage: "display name for a stub dev login"},
			&cli.StringFlag{Name: "email", Usage: "email for a stub dev login"},
		},
		Action: func(c *cli.Context) error {
			e, err := buildEnv()
			if err != nil {
				return err
			}

			token := c.String("token")
			if token == "" {
				if c.String("name") == "" || c.String("email") == "" {
					return fmt.Errorf("provide --token, or --name and --email for a dev login")
				}
				token, err = e.backend.DevLogin(c.Context, c.String("name"), c.String("email"))
				if err != nil {
					return err
				}
			}

			if err := e.sessions.Save(token); err != nil {
				return err
			}
			fmt.Println("Logged in.")
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "clear the stored session token",
		Action: func(c *cli.Context) error {
			e, err := buildEnv()
			if err != nil {
				return err
			}
			if err := e.sessions.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// formFlags are shared by publish and edit
func formFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "listing name/title"},
		&cli.StringFlag{Name: "description", Usage: "listing description"},
		&cli.StringFlag{Name: "province", Usage: "province (selecting one resets the city)"},
		&cli.StringFlag{Name: "city", Usage: "city within the selected province"},
		&cli.StringFlag{Name: "contact", Usage: "contact number"},
		&cli.StringFlag{Name: "facebook", Usage: "Facebook page URL"},
		&cli.StringFlag{Name: "website", Usage: "website URL"},
		&cli.BoolFlag{Name: "unavailable", Usage: "mark the listing as not currently available"},
		&cli.StringSliceFlag{Name: "field", Usage: "category field as name=value (repeatable)"},
		&cli.StringSliceFlag{Name: "toggle", Usage: "toggle an array field as name=value (repeatable)"},
		&cli.StringSliceFlag{Name: "image", Usage: "image file to upload (repeatable)"},
		&cli.IntSliceFlag{Name: "remove-image", Usage: "drop the image slot at this index (repeatable)"},
	}
}

// fillController applies the shared form flags onto a controller instance
func fillController(c *cli.Context, ctl *form.Controller) error {
	if c.IsSet("name") {
		ctl.Name = c.String("name")
	}
	if c.IsSet("description") {
		ctl.Description = c.String("description")
	}
	if c.IsSet("contact") {
		ctl.Contact = c.String("contact")
	}
	if c.IsSet("province") {
		ctl.SetProvince(c.String("province"))
	}
	if c.IsSet("city") {
		ctl.City = c.String("city")
	}
	if c.IsSet("facebook") {
		ctl.Facebook = c.String("facebook")
	}
	if c.IsSet("website") {
		ctl.Website = c.String("website")
	}
	if c.IsSet("unavailable") {
		ctl.Available = !c.Bool("unavailable")
	}

	for _, kv := range c.StringSlice("field") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--field wants name=value, got %q", kv)
		}
		ctl.SetField(name, value)
	}
	for _, kv := range c.StringSlice("toggle") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--toggle wants name=value, got %q", kv)
		}
		ctl.Toggle(name, value)
	}

	// Removals run before uploads so an edit can swap a full gallery slot
	// in one invocation. Higher indexes go first to keep the rest stable.
	removals := c.IntSlice("remove-image")
	sort.Sort(sort.Reverse(sort.IntSlice(removals)))
	for _, index := range removals {
		ctl.RemoveImage(index)
	}

	paths := c.StringSlice("image")
	if len(paths) > 0 {
		files := make([]form.File, 0, len(paths))
		handles := make([]*os.File, 0, len(paths))
		defer func() {
			for _, f := range handles {
				_ = f.Close()
			}
		}()
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open image %s: %w", path, err)
			}
			handles = append(handles, f)
			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat image %s: %w", path, err)
			}
			files = append(files, form.File{Name: info.Name(), Size: info.Size(), Reader: f})
		}
		if err := ctl.AddImages(c.Context, files); err != nil {
			return err
		}
	}
	return nil
}

func runForm(c *cli.Context, ctl *form.Controller) error {
	if err := ctl.LoadReferenceData(c.Context); err != nil {
		return err
	}
	if err := fillController(c, ctl); err != nil {
		return err
	}

	listing, err := ctl.Submit(c.Context)
	if err != nil {
		if msg := ctl.LastError(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}

	if ctl.EditMode() {
		fmt.Printf("Listing %s updated.\n", listing.ID)
	} else {
		fmt.Printf("Listing published with id %s.\n", listing.ID)
	}
	fmt.Printf("See it with: holidaysri show --category %s --id %s\n", ctl.Schema().Slug, listing.ID)
	return nil
}

func publishCommand() *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "publish a new listing against an advertisement slot",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "category", Required: true, Usage: "category slug (see `holidaysri categories`)"},
			&cli.StringFlag{Name: "ad-id", Required: true, Usage: "advertisement slot id"},
		}, formFlags()...),
		Action: func(c *cli.Context) error {
			e, err := buildEnv()
			if err != nil {
				return err
			}
			schema, err := catalog.Get(c.String("category"))
			if err != nil {
				return err
			}
			ctl := form.NewPublish(schema, e.backend, e.uploads, c.String("ad-id"))
			return runForm(c, ctl)
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "edit an existing listing; unset flags keep their saved values",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "category", Required: true, Usage: "category slug"},
			&cli.StringFlag{Name: "id", Required: true, Usage: "listing id"},
		}, formFlags()...),
		Action: func(c *cli.Context) error {
			e, err := buildEnv()
			if err != nil {
				return err
			}
			schema, err := catalog.Get(c.String("category"))
			if err != nil {
				return err
			}
			ctl := form.NewEdit(schema, e.backend, e.uploads, c.String("id"))
			return runForm(c, ctl)
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "show one listing with its reviews",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Required: true},
			&cli.StringFlag{Name: "id", Required: true},
		},
		Action: func(c *cli.Context) error {
			e, err := buildEnv()
			if err != nil {
				return err
			}

			v := viewer.New(e.backend, e.sessions, c.String("category"), c.String("id"))
			if err := v.LoadDetail(c.Context); err != nil {
				return fmt.Errorf("could not load this listing: %w", err)
			}

			l := v.Listing()
			fmt.Printf("%s (%s)\n", l.Name, l.Category)
			fmt.Printf("  %s, %s (contact %s)\n", l.City, l.Province, l.Contact)
			fmt.Printf("  %s\n", l.Description)
			if len(l.Images) > 0 {
				fmt.Printf("  Images:\n")
				for _, img := range l.Images {
					fmt.Printf("    %s\n", img.URL)
				}
			}
			fmt.Printf("  Rating: %.1f (%d reviews)\n", l.AverageRating, l.TotalReviews)
			for _, r := range v.Reviews() {
				fmt.Printf("    [%d/5] %s (%s)\n", r.Rating, r.Comment, r.UserName)
			}
			return nil
		},
	}
}

func reviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "add or delete a review on a listing",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "submit a rating and comment",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Required: true},
					&cli.StringFlag{Name: "id", Required: true},
					&cli.IntFlag{Name: "rating", Required: true, Usage: "1 to 5"},
					&cli.StringFlag{Name: "comment", Required: true},
				},
				Action: func(c *cli.Context) error {
					e, err := buildEnv()
					if err != nil {
						return err
					}

					v := viewer.New(e.backend, e.sessions, c.String("category"), c.String("id"))
					if err := v.LoadDetail(c.Context); err != nil {
						return fmt.Errorf("could not load this listing: %w", err)
					}
					if err := v.SubmitReview(c.Context, c.Int("rating"), c.String("comment")); err != nil {
						return fmt.Errorf("%s", v.LastError())
					}

					l := v.Listing()
					fmt.Printf("Review submitted. New rating: %.1f (%d reviews)\n",
						l.AverageRating, l.TotalReviews)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "delete your own review",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Required: true},
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "review-id", Required: true},
					&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
				},
				Action: func(c *cli.Context) error {
					e, err := buildEnv()
					if err != nil {
						return err
					}

					v := viewer.New(e.backend, e.sessions, c.String("category"), c.String("id"))
					if err := v.LoadDetail(c.Context); err != nil {
						return fmt.Errorf("could not load this listing: %w", err)
					}

					confirm := func() bool {
						if c.Bool("yes") {
							return true
						}
						fmt.Print("Delete this review? [y/N] ")
						var answer string
						_, _ = fmt.Scanln(&answer)
						return strings.EqualFold(answer, "y")
					}
					if err := v.DeleteReview(c.Context, c.String("review-id"), confirm); err != nil {
						return fmt.Errorf("%s", v.LastError())
					}
					fmt.Println("Review deleted.")
					return nil
				},
			},
		},
	}
}

func myPostsCommand() *cli.Command {
	return &cli.Command{
		Name:  "my-posts",
		Usage: "list your own listings in a category",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Required: true},
		},
		Action: func(c *cli.Context) error {
			e, err := buildEnv()
			if err != nil {
				return err
			}

			listings, err := e.backend.ListMyListings(c.Context, c.String("category"))
			if err != nil {
				return err
			}
			if len(listings) == 0 {
				fmt.Println("No posts yet in this category.")
				return nil
			}
			for _, l := range listings {
				fmt.Printf("%s  %-30s  %s, %s  %.1f★ (%d)\n",
					l.ID, l.Name, l.City, l.Province, l.AverageRating, l.TotalReviews)
			}
			return nil
		},
	}
}

func provincesCommand() *cli.Command {
	return &cli.Command{
		Name:  "provinces",
		Usage: "list provinces and their cities",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "fetch the table from the backend for this category"},
		},
		Action: func(c *cli.Context) error {
			table := location.Table()
			if category := c.String("category"); category != "" {
				e, err := buildEnv()
				if err != nil {
					return err
				}
				table = e.backend.FetchProvinces(c.Context, category)
			}
			for _, province := range location.Provinces() {
				fmt.Println(province)
				for _, city := range table[province] {
					fmt.Printf("  %s\n", city)
				}
			}
			return nil
		},
	}
}
