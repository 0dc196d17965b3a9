package main

import (
	"os"

	"NewsletterDesk/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
