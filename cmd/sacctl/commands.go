package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sacvietnam/storefront/internal/apiclient"
	"github.com/sacvietnam/storefront/internal/config"
	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/model"
	"github.com/sacvietnam/storefront/internal/service"
)

type rootOptions struct {
	apiURL  string
	timeout time.Duration
	lang    string
	asJSON  bool
	verbose bool
}

// newRootCmd builds a fresh command tree so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sacctl",
		Short: "Storefront tooling for the SAC product API",
		Long: `sacctl computes displayed prices and talks to the SAC product API.

The API base URL comes from --api-url, or from APP_ENV with
API_DEV_BASE_URL / API_PROD_BASE_URL like the server.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.Logger = log.Logger.Level(zerolog.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Product API base URL (default: chosen by APP_ENV)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Request timeout (default: API_TIMEOUT)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "Output language, en or vi (default: DEFAULT_LANG)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of text")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newPriceCmd(opts), newProductCmd(opts), newUploadCmd(opts))
	return root
}

func (o *rootOptions) resolveLang() format.Lang {
	if o.lang != "" {
		return format.ParseLang(o.lang, format.Vietnamese)
	}
	cfg, err := config.Load()
	if err != nil {
		return format.Vietnamese
	}
	return cfg.Lang()
}

func (o *rootOptions) client() (*apiclient.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	apiCfg := apiclient.Config{BaseURL: cfg.APIBaseURL(), Timeout: cfg.APITimeout}
	if o.apiURL != "" {
		apiCfg.BaseURL = o.apiURL
	}
	if o.timeout > 0 {
		apiCfg.Timeout = o.timeout
	}
	return apiclient.NewProvider(apiCfg).Client(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newPriceCmd(opts *rootOptions) *cobra.Command {
	var (
		price float64
		kind  string
		value float64
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Show how a price and discount are displayed",
		Example: `  sacctl price --price 100000 --type percent --value 20
  sacctl price --price 50000 --type fixed --value 10000 --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := service.NewPricingService().Preview(price, model.DiscountSpec{Type: kind, Value: value}, opts.resolveLang())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return printJSON(out, view)
			}

			if view.Discounted {
				fmt.Fprintf(out, "%s  (was %s, %s)\n", view.DiscountedPriceText, view.OriginalPriceText, view.Badge)
			} else {
				fmt.Fprintln(out, view.DiscountedPriceText)
			}
			fmt.Fprintf(out, "discount: %s\n", view.DiscountAmountText)
			fmt.Fprintf(out, "reading:  %s\n", view.PriceReading)
			return nil
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "Base price in VND")
	cmd.Flags().StringVar(&kind, "type", "percent", "Discount type: percent or fixed")
	cmd.Flags().Float64Var(&value, "value", 0, "Discount value")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newProductCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Read products from the product API",
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a product and its displayed price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			catalog := service.NewCatalogService(client, nil, service.NewPricingService(), nil)
			view, err := catalog.Product(cmd.Context(), args[0], opts.resolveLang())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return printJSON(out, view)
			}

			p := view.Product
			fmt.Fprintf(out, "%s  %s\n", p.ID, p.Name)
			fmt.Fprintf(out, "price:     %s\n", view.Pricing.DiscountedPriceText)
			if view.Pricing.Discounted {
				fmt.Fprintf(out, "original:  %s (%s)\n", view.Pricing.OriginalPriceText, view.Pricing.Badge)
			}
			fmt.Fprintf(out, "inventory: %d\n", p.Inventory)
			fmt.Fprintf(out, "images:    %d\n", len(p.Images))
			return nil
		},
	}

	cmd.AddCommand(get)
	return cmd
}

func newUploadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload product images to temporary storage",
		Long: `Upload product images to the API's temporary area. Files that fail
are reported and left out of the resulting image list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			files := make([]service.FileInput, len(args))
			for i, path := range args {
				files[i] = service.FileInput{
					Name: filepath.Base(path),
					Open: func() (io.ReadCloser, error) { return os.Open(path) },
				}
			}

			report := service.NewUploadService(client, nil).UploadImages(cmd.Context(), files)

			out := cmd.OutOrStdout()
			if opts.asJSON {
				if err := printJSON(out, report); err != nil {
					return err
				}
			} else {
				for _, img := range report.Images {
					fmt.Fprintf(out, "%s\t%s\n", img.Name, img.FilePath)
				}
				for _, f := range report.Failed {
					fmt.Fprintln(cmd.ErrOrStderr(), f.Message)
				}
			}

			if len(report.Images) == 0 {
				return fmt.Errorf("no files uploaded")
			}
			return nil
		},
	}
}
