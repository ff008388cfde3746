package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/knuckleball-lang/knuckleball"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate lines from stdin against the dispatcher",
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx, stop, err := buildContext(flagConfigPath)
	if err != nil {
		return err
	}
	defer stop()

	session := knuckleball.NewDefaultSession("stdin")
	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("kb> ")
		if !stdin.Scan() {
			break
		}
		fmt.Println(ctx.Execute(stdin.Text(), session))
	}
	return stdin.Err()
}
