package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new annotator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, logger, err := buildService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := service.RegisterUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", args[0])
			return nil
		},
	}
}
