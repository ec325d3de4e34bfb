package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/malusev998/currency"
)

func (s *session) openCache() (currency.Storage, *currency.RateStore, error) {
	st, err := newStorage(s.config, s.settings)

	if err != nil {
		return nil, nil, err
	}

	rates, err := st.Load(s.config.Ctx)

	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	s.logger.Debug("rate cache loaded", "storage", st.Name(), "records", rates.Len())

	return st, rates, nil
}

func (s *session) saveCache(st currency.Storage, rates *currency.RateStore) error {
	if err := st.Save(s.config.Ctx, rates); err != nil {
		return fmt.Errorf("error while saving rate cache: %w", err)
	}

	s.logger.Debug("rate cache saved", "storage", st.Name(), "records", rates.Len())

	return nil
}

func cacheCommand(s *session) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the rate cache",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "List cached rates and their age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, rates, err := s.openCache()

			if err != nil {
				return err
			}

			defer st.Close()

			out := cmd.OutOrStdout()

			if rates.Len() == 0 {
				_, err = fmt.Fprintln(out, "rate cache is empty")
				return err
			}

			now := s.now()
			t := newTable("From", "To", "Rate", "Obtained", "Age", "Fresh")

			for _, rate := range rates.Rates {
				age := rate.Age(now)
				t.Row(
					rate.From,
					rate.To,
					strconv.FormatFloat(rate.Rate, 'f', -1, 64),
					rate.ObtainedAt.Format(time.RFC3339),
					age.Truncate(time.Second).String(),
					strconv.FormatBool(age < s.settings.MaxAge),
				)
			}

			_, err = fmt.Fprintln(out, t.Render())

			return err
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, rates, err := s.openCache()

			if err != nil {
				return err
			}

			defer st.Close()

			removed := rates.Len()
			rates.Clear()

			if err := s.saveCache(st, rates); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached rates\n", removed)

			return err
		},
	}

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove cached rates older than --max-age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, rates, err := s.openCache()

			if err != nil {
				return err
			}

			defer st.Close()

			removed := rates.Prune(s.settings.MaxAge, s.now())

			if err := s.saveCache(st, rates); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d stale rates, %d left\n", removed, rates.Len())

			return err
		},
	}

	cacheCmd.AddCommand(showCmd, clearCmd, pruneCmd)

	return cacheCmd
}
