package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cmdInit() *cobra.Command {
	var realm string
	var listen string

	c := &cobra.Command{
		Use:   "init",
		Short: "Create ~/.doorman/config.yaml with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &Config{
				Addr:  listen,
				Realm: realm,
				Users: map[string]string{},
			}
			if err := saveConfig(cfgPath, cfg); err != nil {
				return err
			}
			fmt.Printf("Wrote config: %s\nAdd users under the `users:` map before serving.\n", cfgPath)
			return nil
		},
	}
	c.Flags().StringVar(&realm, "realm", "Private Area", "challenge realm")
	c.Flags().StringVar(&listen, "listen", ":8085", "listen address")
	return c
}
