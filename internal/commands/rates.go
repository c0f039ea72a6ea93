package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/JunhyunKang/mock-sol/internal/exchange"
)

func newRatesCommand() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "rates [from] [to]",
		Short: "Show exchange rates, or convert between two currencies",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates := exchange.DefaultRates()

			if len(args) == 0 {
				for _, r := range rates {
					if r.Code == "KRW" {
						continue
					}
					fmt.Printf("%-4s %-10s %10s  %+6s\n", r.Code, r.Name, r.Rate.String(), r.Change.String())
				}
				return nil
			}

			from := args[0]
			to := "KRW"
			if len(args) == 2 {
				to = args[1]
			}

			rate, err := exchange.CrossRate(rates, from, to)
			if err != nil {
				return err
			}
			fmt.Printf("1 %s = %s %s\n", from, rate.Round(4).String(), to)

			if amount != "" {
				amt, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", amount, err)
				}
				result, err := exchange.Convert(rates, from, to, amt)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s = %s %s\n", amt.String(), from, result.Round(2).String(), to)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to convert")

	return cmd
}
