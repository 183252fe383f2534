// Package commands defines the recruiter-mailer CLI.
//
// Commands
//
//   - test <address>   Send one test email, skipping the sheet
//   - send --confirm   Send the assignment to every address in the sheet
//   - recipients       Print the addresses that would be mailed
//   - preview          Write the rendered email to stdout or a file
//   - validate         Check the configuration without sending anything
//
// # Configuration
//
// The root command loads configuration (YAML file, .env, environment) and
// initializes logging before any subcommand runs. Logs go to stderr; command
// results are written to stdout, as JSON for test and send.
package commands
