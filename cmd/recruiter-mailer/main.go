package main

import (
	"os"

	"github.com/blockedby/recruiter-mailer/cmd/recruiter-mailer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
