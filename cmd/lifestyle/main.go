package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/lifestyleapp/internal/config"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lifestyle",
		Short:        "Composite four-cell promotional images",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./lifestyle.yaml if present)")
	pf.String("title-font", config.DefaultFont, "TrueType font for the title")
	pf.String("caption-font", config.DefaultFont, "TrueType font for the captions")
	pf.String("icon", config.DefaultIcon, "icon drawn in every caption box")
	pf.String("images-dir", config.DefaultImagesDir, "directory cell images are resolved in")
	pf.String("output-dir", config.DefaultOutputDir, "directory for auto-numbered outputs")
	pf.Int("quality", config.DefaultQuality, "JPEG quality (1-100)")
	pf.Bool("allow-remote", false, "allow http(s) URLs as cell images")

	root.AddCommand(newComposeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
