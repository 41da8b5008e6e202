// Console transport: each input line is a message from one chat.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/bot"
	"github.com/mesh-intelligence/diindiin/internal/report"
)

// Identity flags shared by chat and say.
var (
	flagChatID   int64
	flagUsername string
	flagName     string
	flagLang     string
	flagOutDir   string
)

func addIdentityFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagChatID, "chat-id", 1, "chat id the messages come from")
	cmd.Flags().StringVar(&flagUsername, "username", os.Getenv("USER"), "username of the sender")
	cmd.Flags().StringVar(&flagName, "name", "", "first name of the sender")
	cmd.Flags().StringVar(&flagLang, "lang", "", "client language tag, e.g. pt-BR or en")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "directory for exported documents")
}

func init() {
	addIdentityFlags(chatCmd)
	addIdentityFlags(sayCmd)
}

// sender is the message template for the configured identity.
func sender() bot.Message {
	return bot.Message{
		ChatID:       flagChatID,
		Username:     flagUsername,
		FirstName:    flagName,
		LanguageCode: flagLang,
	}
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the bot from the terminal",
	Long:  "Read one message per line from standard input and print each reply. End input or interrupt to quit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer sess.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		fmt.Fprintln(cmd.ErrOrStderr(), "diindiin chat: type /start to begin, Ctrl-D to quit")
		err = runChat(ctx, sess.dispatcher, sender(), cmd.InOrStdin(), cmd.OutOrStdout(), flagOutDir, sess.log,
			bot.WithBusyReply(sess.dispatcher.Busy))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// runChat feeds lines from in to h through a bot.Server and prints the
// replies to out until in ends or ctx is done. At most a queue of lines is
// unanswered at a time, so piped input is never refused as busy.
func runChat(ctx context.Context, h bot.Handler, from bot.Message, in io.Reader, out io.Writer, docDir string, log *zap.Logger, opts ...bot.ServerOption) error {
	var mu sync.Mutex
	pending := make(chan struct{}, bot.DefaultQueueSize)
	send := func(_ bot.Message, r bot.Reply) {
		mu.Lock()
		defer mu.Unlock()
		printReply(out, docDir, r)
		<-pending
	}

	msgs := make(chan bot.Message)
	go func() {
		defer close(msgs)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			msg := from
			msg.Text = line
			select {
			case pending <- struct{}{}:
			case <-ctx.Done():
				return
			}
			select {
			case msgs <- msg:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Warn("reading input", zap.Error(err))
		}
	}()

	return bot.NewServer(h, send, log, opts...).Serve(ctx, msgs)
}

// printReply writes the reply text and saves an attached document to docDir.
func printReply(out io.Writer, docDir string, r bot.Reply) {
	fmt.Fprintln(out, r.Text)
	if r.Document != nil {
		path, err := report.Save(docDir, r.Document.Name, r.Document.Data)
		if err != nil {
			fmt.Fprintf(out, "could not save %s: %v\n", r.Document.Name, err)
		} else {
			fmt.Fprintln(out, "saved", path)
		}
	}
	fmt.Fprintln(out)
}
