package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/malusev998/currency"
	"github.com/malusev998/currency/currencies"
	"github.com/malusev998/currency/metrics"
	"github.com/malusev998/currency/services"
)

// parseArguments splits args into prices and upper-cased currency codes.
// Anything that does not parse as a finite number is taken as a code.
func parseArguments(catalog currency.Catalog, args []string) ([]string, []float64, error) {
	codes := make([]string, 0, len(args))
	prices := make([]float64, 0, len(args))

	for _, arg := range args {
		if price, ok := parsePrice(arg); ok {
			prices = append(prices, price)
			continue
		}

		code := strings.ToUpper(arg)

		if _, ok := catalog.Lookup(code); !ok {
			return nil, nil, services.NewUnknownCurrencyError(catalog, code)
		}

		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil, nil, services.ErrNoCurrencies
	}

	if len(prices) == 0 {
		prices = append(prices, 1)
	}

	return codes, prices, nil
}

func parsePrice(arg string) (float64, bool) {
	price, err := strconv.ParseFloat(arg, 64)

	if err != nil || math.IsInf(price, 0) || math.IsNaN(price) {
		return 0, false
	}

	return price, true
}

func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		}).
		Headers(headers...)
}

func renderTable(out io.Writer, catalog *currencies.Catalog, result *services.Table) error {
	headers := make([]string, 0, len(result.Currencies))

	for _, cur := range result.Currencies {
		headers = append(headers, cur.DisplayName())
	}

	t := newTable(headers...)

	for _, values := range result.Rows {
		cells := make([]string, 0, len(values))

		for i, value := range values {
			cells = append(cells, catalog.Format(result.Currencies[i].Code, value))
		}

		t.Row(cells...)
	}

	_, err := fmt.Fprintln(out, t.Render())

	return err
}

func (s *session) newResolver(rates *currency.RateStore, m *metrics.Metrics) (*services.Resolver, error) {
	fetcher, err := newFetcher(s.config, s.settings)

	if err != nil {
		return nil, err
	}

	return &services.Resolver{
		Rates:          rates,
		Fetcher:        fetcher,
		Catalog:        s.config.Catalog,
		CheckFreshness: s.settings.CheckFreshness,
		MaxAge:         s.settings.MaxAge,
		Now:            s.now,
		Logger:         s.logger,
		Metrics:        m,
	}, nil
}

func (s *session) writeMetrics(m *metrics.Metrics) {
	if s.settings.MetricsFile == "" {
		return
	}

	if err := m.WriteToTextfile(s.settings.MetricsFile); err != nil {
		s.logger.Warn("could not write metrics", "file", s.settings.MetricsFile, "error", err)
	}
}

func (s *session) convert(cmd *cobra.Command, args []string) error {
	ctx := s.config.Ctx
	codes, prices, err := parseArguments(s.config.Catalog, args)

	if err != nil {
		return err
	}

	st, rates, err := s.openCache()

	if err != nil {
		return err
	}

	defer st.Close()

	m := metrics.NewMetrics()
	defer s.writeMetrics(m)

	resolver, err := s.newResolver(rates, m)

	if err != nil {
		return err
	}

	service := services.ConversionService{
		Conversion: resolver,
		Catalog:    s.config.Catalog,
	}

	result, err := service.Convert(ctx, codes, prices)

	if err != nil {
		return err
	}

	if err := renderTable(cmd.OutOrStdout(), s.config.Catalog, result); err != nil {
		return err
	}

	return s.saveCache(st, rates)
}
