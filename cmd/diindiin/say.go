package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <message>",
	Short: "Send one message to the bot and print the reply",
	Example: `  diindiin say /start
  diindiin say /add 50 lunch
  diindiin say --lang en add habit gym weekly 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer sess.close()

		msg := sender()
		msg.Text = strings.Join(args, " ")
		printReply(cmd.OutOrStdout(), flagOutDir, sess.dispatcher.Handle(cmd.Context(), msg))
		return nil
	},
}
