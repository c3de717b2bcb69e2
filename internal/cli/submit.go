package cli

import (
	"fmt"

	"clipquiz/internal/domain"
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "submit <username> <question-id> <choice>",
		Short: "Submit an answer, optionally with a category label",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, logger, err := buildService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			username, questionID, choice := args[0], args[1], args[2]
			exists, err := service.UserExists(ctx, username)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrUserNotFound
			}

			correct, err := service.SubmitAnswer(ctx, username, questionID, choice, label)
			if err != nil {
				return err
			}
			if correct {
				fmt.Fprintln(cmd.OutOrStdout(), "Correct!")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Incorrect")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "category label for the question (must be in the category set)")
	return cmd
}
