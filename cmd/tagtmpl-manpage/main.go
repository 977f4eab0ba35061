package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tagtmpl/cmd/tagtmpl"
	"github.com/arthur-debert/tagtmpl/internal/version"
)

func main() {
	rootCmd := tagtmpl.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TAGTMPL",
		Section: "1",
		Source:  "tagtmpl " + version.Version,
		Manual:  "tagtmpl manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
