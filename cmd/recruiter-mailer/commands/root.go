package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blockedby/recruiter-mailer/internal/assignment"
	"github.com/blockedby/recruiter-mailer/internal/config"
	"github.com/blockedby/recruiter-mailer/internal/dispatcher"
	"github.com/blockedby/recruiter-mailer/internal/logger"
	"github.com/blockedby/recruiter-mailer/internal/sheet"
)

// app carries state shared by subcommands once the root pre-run has loaded it.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *logger.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "recruiter-mailer",
		Short:        "Mail the first-round assignment to candidates listed in a shared sheet",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (env vars override it)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	root.AddCommand(
		testCmd(a),
		sendCmd(a),
		recipientsCmd(a),
		previewCmd(a),
		validateCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if err := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger.Get()
	return nil
}

// service wires the dispatcher from configuration. Callers validate the
// parts of the configuration they rely on first.
func (a *app) service() *dispatcher.Service {
	src := sheet.NewSource(sheet.Config{
		SheetID: a.cfg.SheetID,
		BaseURL: a.cfg.SheetBaseURL,
		Timeout: a.cfg.SheetTimeout,
	}, nil, a.log)

	mailer := dispatcher.NewEmailSender(dispatcher.SMTPConfig{
		Host:     a.cfg.SMTPHost,
		Port:     a.cfg.SMTPPort,
		Username: a.cfg.SenderEmail,
		Password: a.cfg.SenderPassword,
	})

	return dispatcher.NewService(
		src,
		mailer,
		dispatcher.NewFixedPacer(a.cfg.SendInterval),
		assignment.Render,
		dispatcher.Options{
			Sender:      a.cfg.SenderEmail,
			Subject:     a.cfg.Subject,
			TestSubject: a.cfg.TestSubject,
		},
		a.log,
	)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
