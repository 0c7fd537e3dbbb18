package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youruser/lifestyleapp/internal/config"
	imagepkg "github.com/youruser/lifestyleapp/internal/image"
	"github.com/youruser/lifestyleapp/internal/section"
)

type composeOptions struct {
	title    string
	sections string
	output   string
	footerQR string
	captions [4]string
	images   [4]string
}

func newComposeCmd() *cobra.Command {
	opts := &composeOptions{}
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Render one image from a title and four captioned cells",
		Example: `  lifestyle compose --title "Using this will give you +9999999999999 AURA" \
    --top-left-caption Tren --top-left-image trenbolone-injection.jpg \
    --top-right-caption Dumbell --top-right-image s-l1200.jpg \
    --bottom-left-caption Alcohal --bottom-left-image download.jpg \
    --bottom-right-caption FitMaxAi --bottom-right-image "unnamed (19).jpg"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			req, err := opts.request(cmd)
			if err != nil {
				return err
			}

			comp := imagepkg.New(imagepkg.Assets{
				TitleFont:   cfg.TitleFont,
				CaptionFont: cfg.CaptionFont,
				Icon:        cfg.Icon,
				ImagesDir:   cfg.ImagesDir,
				OutputDir:   cfg.OutputDir,
			})
			comp.Quality = cfg.Quality
			comp.AllowRemote = cfg.AllowRemote
			comp.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

			res, err := comp.Compose(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Report())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.title, "title", "t", "", "main title above the grid")
	f.StringVarP(&opts.sections, "sections", "s", "", "CSV with position,caption,image columns")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default next outputN.jpg in the output dir)")
	f.StringVar(&opts.footerQR, "footer-qr", "", "text to encode as a QR code below the grid")
	for _, p := range section.Positions {
		name := dashed(p)
		f.StringVar(&opts.captions[p], name+"-caption", "", "caption for the "+name+" cell")
		f.StringVar(&opts.images[p], name+"-image", "", "image file for the "+name+" cell")
	}
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// request merges the sections CSV, if any, with per-cell flags. Flags that
// were set win over the CSV.
func (o *composeOptions) request(cmd *cobra.Command) (section.Request, error) {
	var cells [4]section.Section
	var have [4]bool
	if o.sections != "" {
		loaded, err := section.LoadSectionsCSV(o.sections)
		if err != nil {
			return section.Request{}, err
		}
		for _, s := range loaded {
			cells[s.Position] = s
			have[s.Position] = true
		}
	}
	for _, p := range section.Positions {
		cells[p].Position = p
		name := dashed(p)
		if cmd.Flags().Changed(name + "-caption") {
			cells[p].Caption = o.captions[p]
			have[p] = true
		}
		if cmd.Flags().Changed(name + "-image") {
			cells[p].Image = o.images[p]
			have[p] = true
		}
	}

	req := section.Request{Title: o.title, Output: o.output, FooterQR: o.footerQR}
	for p, s := range cells {
		if have[p] {
			req.Sections = append(req.Sections, s)
		}
	}
	return req, req.Validate()
}

func dashed(p section.Position) string {
	return strings.ReplaceAll(p.String(), "_", "-")
}
