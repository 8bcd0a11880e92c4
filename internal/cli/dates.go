package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bussola/internal/app/service"
	"bussola/internal/config"
	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
	"bussola/pkg/translator"
)

type dateFlags struct {
	category    string
	minutes     int
	rejectPast  bool
	autoCorrect bool
	lang        string
}

func newDatesCmd(loadConfig func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Check action date pairs without touching the database",
	}
	cmd.AddCommand(newValidateDatesCmd(loadConfig))
	cmd.AddCommand(newAutoCorrectDatesCmd(loadConfig))
	return cmd
}

func (f *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", domain.CategoryPost, "action category")
	cmd.Flags().IntVarP(&f.minutes, "time", "t", 0, "minutes the action needs before publishing")
	cmd.Flags().BoolVar(&f.rejectPast, "reject-past", false, "treat dates before now as invalid")
	cmd.Flags().StringVar(&f.lang, "lang", translator.DefaultLanguage, "message language")
}

func (f *dateFlags) check(args []string) ports.DateCheck {
	return ports.DateCheck{
		Date:            args[0],
		InstagramDate:   args[1],
		RequiredMinutes: f.minutes,
		Category:        f.category,
		RejectPastDates: f.rejectPast,
		AutoCorrect:     f.autoCorrect,
	}
}

func scheduleFromConfig(cfg *config.Config) *service.ScheduleService {
	return service.NewScheduleService(nil, domain.DateOptions{
		RejectPastDates: cfg.RejectPastDates,
		MinTimeBetween:  cfg.MinTimeBetween,
		Location:        cfg.Location(),
	})
}

func newValidateDatesCmd(loadConfig func() *config.Config) *cobra.Command {
	flags := &dateFlags{}
	cmd := &cobra.Command{
		Use:   "validate <date> <instagram-date>",
		Short: "Report the date rules a pair breaks",
		Example: `  bussolactl dates validate "2025-01-01 10:00:00" "2025-01-01 10:10:00" -c reels -t 20
  bussolactl dates validate "2025-01-01 10:00" "2025-01-01 09:00" --auto-correct`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := scheduleFromConfig(loadConfig()).Validate(cmd.Context(), flags.check(args), flags.lang)

			out := cmd.OutOrStdout()
			if report.IsValid {
				fmt.Fprintln(out, "valid")
				return nil
			}
			for _, msg := range report.Errors {
				fmt.Fprintf(out, "- %s\n", msg)
			}
			if report.Corrected != nil {
				if report.Corrected.Date != nil {
					fmt.Fprintf(out, "date: %s\n", *report.Corrected.Date)
				}
				if report.Corrected.InstagramDate != nil {
					fmt.Fprintf(out, "instagram_date: %s\n", *report.Corrected.InstagramDate)
				}
			}
			return fmt.Errorf("%w: %d issue(s)", domain.ErrInvalidDates, len(report.Errors))
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.autoCorrect, "auto-correct", false, "also print corrected values")
	return cmd
}

func newAutoCorrectDatesCmd(loadConfig func() *config.Config) *cobra.Command {
	flags := &dateFlags{}
	cmd := &cobra.Command{
		Use:   "autocorrect <date> <instagram-date>",
		Short: "Print a pair that satisfies the date rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := scheduleFromConfig(loadConfig()).AutoCorrect(cmd.Context(), flags.check(args))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", pair.Date, pair.InstagramDate)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
