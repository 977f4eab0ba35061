package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tagtmpl/cmd/tagtmpl"
	"github.com/arthur-debert/tagtmpl/pkg/errors"
	"github.com/arthur-debert/tagtmpl/pkg/styles"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := tagtmpl.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in the danger style
		errorStyle, _ := styles.Default().Style(lipgloss.NewRenderer(os.Stderr), "danger")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			fmt.Fprintf(os.Stderr, "  code: %s\n", code)
		}

		os.Exit(errors.ExitCode(err))
	}
}
