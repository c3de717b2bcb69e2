package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered annotators",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, logger, err := buildService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			users, err := service.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", u.Username, u.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
