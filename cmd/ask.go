package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/manus/internal/conversation"
)

var (
	askNoDelay bool
	askLocale  string
)

var askCmd = &cobra.Command{
	Use:   "ask [message...]",
	Short: "Send one message to the assistant and print the reply",
	Long: `Sends a single message through the same conversation engine the chat
screen uses and prints the assistant's reply. With no arguments the message
is read from standard input.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askNoDelay, "no-delay", false, "Reply immediately instead of simulating typing")
	askCmd.Flags().StringVar(&askLocale, "locale", "", "Answer in this language instead of the saved one (en or ar)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	text, err := askText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	t, _, err := env.translator(askLocale)
	if err != nil {
		return err
	}

	opts := []conversation.Option{conversation.WithMaxInput(env.cfg.Chat.MaxInput)}
	if askNoDelay {
		opts = append(opts, conversation.WithDelay(0, 0))
	} else {
		opts = append(opts, conversation.WithDelay(env.cfg.Chat.ReplyDelayMin, env.cfg.Chat.ReplyDelayMax))
	}
	engine := conversation.NewEngine(t, opts...)

	reply, err := ask(cmd, engine, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

// askText joins the arguments, falling back to reading r.
func askText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading message: %w", err)
	}
	return string(data), nil
}

// ask runs one send/wait/deliver round trip.
func ask(cmd *cobra.Command, engine *conversation.Engine, text string) (string, error) {
	engine.SetInput(text)
	pending, err := engine.Send()
	if errors.Is(err, conversation.ErrEmptyMessage) {
		return "", errors.New("nothing to send: the message is blank")
	}
	if err != nil {
		return "", err
	}

	if err := pending.Wait(cmd.Context()); err != nil {
		engine.Cancel()
		return "", err
	}
	reply, ok := engine.Deliver(pending)
	if !ok {
		return "", errors.New("the reply was discarded")
	}
	return reply.Text, nil
}
