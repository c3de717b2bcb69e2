package cli

import (
	"errors"
	"fmt"

	"clipquiz/internal/domain"
	"github.com/spf13/cobra"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <username>",
		Short: "Show a random unanswered question for the user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, logger, err := buildService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			username := args[0]
			exists, err := service.UserExists(ctx, username)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrUserNotFound
			}

			question, err := service.NextUnansweredQuestion(ctx, username)
			if errors.Is(err, domain.ErrQuestionsExhausted) {
				fmt.Fprintln(cmd.OutOrStdout(), "No more questions to answer")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Question %s (clip: %s)\n", question.QuestionID, question.VideoPath())
			fmt.Fprintf(out, "  %s\n", question.QuestionText)
			for _, option := range question.Options {
				fmt.Fprintf(out, "  - %s\n", option)
			}
			if label, ok, err := service.ExistingLabelFor(ctx, username, question.QuestionID); err != nil {
				return err
			} else if ok {
				fmt.Fprintf(out, "Previously labeled: %s\n", label)
			}
			return nil
		},
	}
}
