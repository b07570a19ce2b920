package main

import (
	"fmt"
	"os"

	"github.com/EhssanAtassi/tsfix/cmd/tsfix/commands"
	"github.com/EhssanAtassi/tsfix/pkg/style"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
