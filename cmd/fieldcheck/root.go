package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Gobd/fieldrules"
	"github.com/Gobd/fieldrules/internal/student"
	"github.com/Gobd/fieldrules/openapi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "FIELDCHECK"
	version   = "0.1.0"

	validMessage = "all fields valid"
)

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:          "fieldcheck",
		Short:        "Validate student records against their field rules",
		Version:      version,
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log validator diagnostics to stderr")

	newValidator := func() *fieldrules.Validator {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		return fieldrules.New(fieldrules.WithLogger(logger))
	}

	cmd.AddCommand(newValidateCmd(newValidator), newSchemaCmd())
	return cmd
}

func newValidateCmd(newValidator func() *fieldrules.Validator) *cobra.Command {
	vp := viper.New()
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a student given by flags, environment or a JSON file",
		Long: "Validate a student record. Fields come from --file, or else from flags and " +
			envPrefix + "_* environment variables; a field that is not given is absent.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			val := newValidator()
			if err := val.Register(&student.Student{}); err != nil {
				return err
			}

			var err error
			if path := vp.GetString("file"); path != "" {
				err = validateFile(val, path)
			} else {
				err = validateConfig(val, vp)
			}
			return report(cmd.OutOrStdout(), err)
		},
	}

	flags := cmd.Flags()
	flags.String("file", "", "JSON file holding the student record")
	flags.String(student.KeyID, "", "student id")
	flags.String(student.KeyName, "", "student name")
	flags.String(student.KeyTelephone, "", "telephone number")
	flags.String(student.KeyBirthday, "", "birthday")

	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	_ = vp.BindPFlags(flags)
	return cmd
}

func validateFile(val *fieldrules.Validator, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var s student.Student
	return val.DecodeAndValidate(f, &s)
}

func validateConfig(val *fieldrules.Validator, vp *viper.Viper) error {
	s, err := student.FromViper(vp)
	if err != nil {
		return err
	}
	return val.Validate(s)
}

// report prints the outcome of a validation. Rule violations are printed
// and are not command errors; anything else is returned.
func report(w io.Writer, err error) error {
	var rerr *fieldrules.RuleError
	switch {
	case err == nil:
		_, _ = color.New(color.FgGreen).Fprintln(w, validMessage)
		return nil
	case errors.As(err, &rerr):
		_, _ = color.New(color.FgRed).Fprintln(w, rerr.Message)
		return nil
	case fieldrules.IsConfigError(err):
		return fmt.Errorf("student rules are misdeclared: %w", err)
	default:
		return err
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing the student record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := openapi.DocBase("fieldcheck", "Student record and its field rules", version)
			if err := openapi.AddSchema(doc, "Student", student.Student{}); err != nil {
				return err
			}
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}
