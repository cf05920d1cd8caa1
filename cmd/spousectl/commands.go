package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spouseshowcase/internal/client"
	"spouseshowcase/internal/datauri"
	"spouseshowcase/internal/schema"
)

const defaultServer = "http://localhost:3000"

func newRootCmd() *cobra.Command {
	var server string

	rootCmd := &cobra.Command{
		Use:           "spousectl",
		Short:         "Add and list spouses on a showcase server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := os.Getenv("SPOUSE_API_URL")
	if def == "" {
		def = defaultServer
	}
	rootCmd.PersistentFlags().StringVar(&server, "server", def, "Base URL of the API server (env SPOUSE_API_URL)")

	newClient := func() (*client.Client, error) {
		return client.New(server)
	}

	rootCmd.AddCommand(newAddCmd(newClient), newListCmd(newClient))
	return rootCmd
}

func newAddCmd(newClient func() (*client.Client, error)) *cobra.Command {
	var user, spouse, image string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Upload an image and add a spouse",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(image)
			if err != nil {
				return fmt.Errorf("error reading image: %w", err)
			}
			uri, err := datauri.Encode(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", image, err)
			}

			in := schema.SpouseInput{UserName: user, SpouseName: spouse, ImageData: uri}
			c, err := newClient()
			if err != nil {
				return err
			}
			// Create validates locally before anything is sent.
			created, err := c.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added spouse #%d: %s (by %s)\n", created.ID, created.SpouseName, created.UserName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Your name (required)")
	cmd.Flags().StringVarP(&spouse, "spouse", "s", "", "Spouse name (required)")
	cmd.Flags().StringVarP(&image, "image", "i", "", "Path to an image file (required)")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("spouse")
	cmd.MarkFlagRequired("image")
	return cmd
}

func newListCmd(newClient func() (*client.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every spouse in the gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			items, err := c.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSPOUSE\tADDED BY\tIMAGE")
			for _, s := range items {
				mediaType, data, err := datauri.Decode(s.ImageData)
				image := "invalid"
				if err == nil {
					image = fmt.Sprintf("%s, %d bytes", mediaType, len(data))
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.SpouseName, s.UserName, image)
			}
			return w.Flush()
		},
	}
}
