package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrhapile/techtriage/pkg/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive troubleshooting conversation",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	bot := chat.New(store,
		chat.WithLanguage(cfg.Language),
		chat.WithLogger(logger))

	cmd.Println(bot.Greeting())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "exit" || input == "quit" {
			break
		}
		cmd.Println(bot.Handle(input))
	}
	return scanner.Err()
}
