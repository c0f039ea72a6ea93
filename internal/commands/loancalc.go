package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/JunhyunKang/mock-sol/internal/loan"
)

func newLoanCalcCommand() *cobra.Command {
	var principal string
	var rate string
	var years int
	var equalPrincipal bool

	cmd := &cobra.Command{
		Use:   "loancalc",
		Short: "Compute a loan repayment schedule summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(principal)
			if err != nil {
				return fmt.Errorf("parsing principal %q: %w", principal, err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("parsing rate %q: %w", rate, err)
			}

			in := loan.CalcInput{Principal: p, AnnualRate: r, Years: years}

			if equalPrincipal {
				result, err := loan.EqualPrincipal(in)
				if err != nil {
					return err
				}
				fmt.Printf("first payment:  %s\n", result.FirstPayment.Round(0).String())
				fmt.Printf("last payment:   %s\n", result.LastPayment.Round(0).String())
				fmt.Printf("total payment:  %s\n", result.TotalPayment.Round(0).String())
				fmt.Printf("total interest: %s\n", result.TotalInterest.Round(0).String())
				return nil
			}

			result, err := loan.EqualPayment(in)
			if err != nil {
				return err
			}
			fmt.Printf("monthly payment: %s\n", result.MonthlyPayment.Round(0).String())
			fmt.Printf("total payment:   %s\n", result.TotalPayment.Round(0).String())
			fmt.Printf("total interest:  %s\n", result.TotalInterest.Round(0).String())
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "loan principal in KRW (required)")
	_ = cmd.MarkFlagRequired("principal")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate, percent (required)")
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().IntVar(&years, "years", 1, "loan period in years")
	cmd.Flags().BoolVar(&equalPrincipal, "equal-principal", false, "use level-principal repayment instead of annuity")

	return cmd
}
