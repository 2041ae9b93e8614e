package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/powerwestjava/solar-atlas/pkg/models/domain"
	"github.com/powerwestjava/solar-atlas/pkg/services/estimate"
)

type estimateCmd struct {
	bill      float64
	district  string
	userType  string
	roofSize  string
	shading   string
	financing string
	grantPct  float64
}

func main() {
	ec := &estimateCmd{}
	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Estimate rooftop solar savings for a West Java site",
		RunE:  ec.run,
	}

	cmd.Flags().Float64Var(&ec.bill, "bill", 0, "Monthly electricity bill in IDR")
	cmd.Flags().StringVar(&ec.district, "district", "Bandung", "District (Bandung, Bekasi, Bogor, Cirebon)")
	cmd.Flags().StringVar(&ec.userType, "user-type", "School", "User type (School, Household, MSME)")
	cmd.Flags().StringVar(&ec.roofSize, "roof-size", "Medium", "Roof size (Small, Medium, Large)")
	cmd.Flags().StringVar(&ec.shading, "shading", "None", "Shading (None, Medium, Heavy)")
	cmd.Flags().StringVar(&ec.financing, "financing", "Direct", "Financing mode (Direct, Community)")
	cmd.Flags().Float64Var(&ec.grantPct, "grant", 0, "Grant coverage percent")

	_ = cmd.MarkFlagRequired("bill")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (ec *estimateCmd) run(_ *cobra.Command, _ []string) error {
	if ec.bill <= 0 {
		return fmt.Errorf("bill must be a positive amount, got %v", ec.bill)
	}

	district, err := domain.ParseDistrict(ec.district)
	if err != nil {
		return err
	}
	userType, err := domain.ParseUserType(ec.userType)
	if err != nil {
		return err
	}
	roofSize, err := domain.ParseRoofSize(ec.roofSize)
	if err != nil {
		return err
	}
	shading, err := domain.ParseShading(ec.shading)
	if err != nil {
		return err
	}
	financing, err := domain.ParseFinancingMode(ec.financing)
	if err != nil {
		return err
	}

	input := domain.NewEstimateInput(ec.bill, district, userType, roofSize, shading, financing, ec.grantPct)
	result := estimate.Estimate(input)

	fmt.Printf("System size:     %.1f kWp (~%d panels)\n", result.SystemSizeKwp, result.PanelCount)
	fmt.Printf("Capital cost:    Rp %.0f\n", result.CapitalCostIDR)
	fmt.Printf("Monthly savings: Rp %.0f\n", result.MonthlySavingsIDR)
	fmt.Printf("Annual energy:   %.0f kWh\n", result.AnnualEnergyKwh)
	fmt.Printf("Bill reduction:  %.0f%%\n", result.BillReductionPct)
	fmt.Printf("CO2 avoided:     %.0f kg/year\n", result.AnnualCO2Kg)
	if result.PaybackYears != nil {
		fmt.Printf("Payback:         %.1f years\n", *result.PaybackYears)
	} else {
		fmt.Println("Payback:         indeterminate")
	}
	if input.Financing == domain.FinancingCommunity {
		fmt.Printf("Upfront cost:    Rp 0 (community funded)\n")
		fmt.Printf("Green fee:       Rp %.0f/month\n", result.GreenFeeIDR)
		fmt.Printf("Net savings:     Rp %.0f/month\n", result.NetSavingsIDR)
	}

	fmt.Println()
	fmt.Println(result.Explanation.Rationale)
	return nil
}
