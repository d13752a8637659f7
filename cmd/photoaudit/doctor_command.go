package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"photoaudit/internal/preflight"
)

func newDoctorCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check catalog access and Flickr connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cmd.Context(), cfg, logger)
			for _, line := range renderCheckLines(results, colorize) {
				fmt.Fprintln(out, line)
			}
			if !preflight.AllPassed(results) {
				return errors.New("one or more checks failed")
			}
			fmt.Fprintln(out, "All checks passed.")
			return nil
		},
	}
}
