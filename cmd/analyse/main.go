// Command analyse runs one job-match analysis from the command line and prints the verdict.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"jobmatch_backend/internal/app/config"
	"jobmatch_backend/internal/app/di"
	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/platform/logging"
	"jobmatch_backend/internal/shared/validation"
)

var errInvalidURL = errors.New("URL inválida")

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(load func() config.Config) *cobra.Command {
	var (
		position string
		skills   []string
	)

	cmd := &cobra.Command{
		Use:           "analyse",
		Short:         "Analyse how well a set of skills matches a job posting",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := load()
			if _, err := logging.Setup(cfg.LogLevel, cfg.Debug, ""); err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg, entity.AnalysisRequest{Position: strings.TrimSpace(position), Skills: trimAll(skills)})
		},
	}

	cmd.Flags().StringVarP(&position, "position", "p", "", "job posting URL")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "candidate skills, comma separated")
	_ = cmd.MarkFlagRequired("position")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, cfg config.Config, req entity.AnalysisRequest) error {
	if !validation.ValidateURL(req.Position) {
		return fmt.Errorf("%w: %q", errInvalidURL, req.Position)
	}

	creds := cfg.Credentials()
	if err := domain.CheckCredentials(creds); err != nil {
		return err
	}

	uc, closeHistory, err := di.NewAnalysisUsecase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeHistory(); err != nil {
			slog.Error("failed to close history store", "error", err)
		}
	}()

	res, err := uc.Analyse(ctx, req, creds)
	if err != nil {
		return err
	}

	if res.ID != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "analysis id: %s\n", res.ID)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
