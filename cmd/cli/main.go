// Package main is the entry point for the AgriPulse terminal CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agripulse-terminal/internal/data"
	"agripulse-terminal/internal/view"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var baseURL string

var rootCmd = &cobra.Command{
	Use:   "agripulse",
	Short: "AgriPulse commodity terminal CLI",
	Long:  `One-shot queries against the AgriPulse market analytics backend.`,
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url",
		os.Getenv("AGRIPULSE_BASE_URL"), "backend base URL (default local dev backend)")
	rootCmd.AddCommand(terminalCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(simulateCmd)
}

func newClient() *data.Client {
	return data.NewClient(baseURL)
}

// Terminal command

var (
	terminalCommodity string
	terminalLocation  string
	terminalHorizon   int
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Fetch commodity analytics",
	Long:  `Fetch the compound analytics payload and print the derived terminal view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := newClient().FetchTerminal(ctx, data.TerminalQuery{
			Commodity:   terminalCommodity,
			HarvestDays: terminalHorizon,
			Location:    terminalLocation,
		})
		if err != nil {
			return fmt.Errorf("terminal fetch failed: %w", err)
		}

		v := view.BuildTerminal(res)
		fmt.Printf("%s — %s\n", v.Commodity, v.Location)
		fmt.Printf("Recommendation: %s (%.0f%%)\n", v.Action, v.Confidence)
		fmt.Printf("Reason: %s\n", v.Reason)
		fmt.Printf("Average price: %.2f Rs/qt\n", v.AveragePrice)
		fmt.Printf("Yield outlook: %s (%s)\n", v.YieldChange, v.YieldFactors)
		fmt.Printf("Sentiment: %s [%s]\n", v.SentimentOverall, v.SentimentKeywords)

		if len(v.SellHigh) > 0 {
			fmt.Println("\nSell high:")
			for _, m := range v.SellHigh {
				fmt.Printf("  %-30s %-20s %10.2f\n", m.Market, m.State, m.Price)
			}
		}
		if len(v.BuyLow) > 0 {
			fmt.Println("\nBuy low:")
			for _, m := range v.BuyLow {
				fmt.Printf("  %-30s %-20s %10.2f\n", m.Market, m.State, m.Price)
			}
		}
		fmt.Printf("\nSample markets: %d\n", v.SampleCount)
		return nil
	},
}

func init() {
	terminalCmd.Flags().StringVar(&terminalCommodity, "commodity", "wheat", "commodity name")
	terminalCmd.Flags().StringVar(&terminalLocation, "location", "Indore", "market location")
	terminalCmd.Flags().IntVar(&terminalHorizon, "harvest-days", 53, "days until harvest (0-120)")
}

// Dashboard command

var dashboardCity string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Fetch the city dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := newClient().FetchDashboard(ctx, dashboardCity)
		if err != nil {
			return fmt.Errorf("dashboard fetch failed: %w", err)
		}

		v := view.BuildDashboard(res)
		fmt.Printf("%s: %s°C, %s (humidity %s%%, wind %s km/h)\n",
			dashboardCity, v.TempC, v.Condition, v.Humidity, v.WindKph)
		fmt.Printf("Sunrise %s, sunset %s\n", v.Sunrise, v.Sunset)
		if v.AISummary != "" {
			fmt.Printf("\n%s\n", v.AISummary)
		}
		fmt.Printf("\n%s\n", v.CropInsight)
		if len(v.News) > 0 {
			fmt.Println("\nNews:")
			for _, n := range v.News {
				fmt.Printf("  - %s\n", n.Headline)
			}
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardCity, "city", "Bhopal", "city name")
}

// Options command

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List international commodities and ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cat, err := newClient().FetchInternationalOptions(ctx)
		if err != nil {
			return fmt.Errorf("options fetch failed: %w", err)
		}

		fmt.Println("Commodities:")
		for _, c := range cat.Commodities {
			fmt.Printf("  %s\n", c)
		}
		fmt.Println("Ports:")
		for _, p := range cat.Ports {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

// Simulate command

var (
	simCommodity   string
	simSource      string
	simDestination string
	simQty         float64
	simDomestic    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a point-to-point trade simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simQty <= 0 {
			return fmt.Errorf("--qty must be positive")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		res, err := newClient().SimulateTrade(ctx, data.TradeQuery{
			Commodity:   simCommodity,
			Source:      simSource,
			Destination: simDestination,
			QtyTonnes:   simQty,
			Domestic:    simDomestic,
		})
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}

		if res.Error != "" {
			// Business-level outcome from the backend, not a transport failure.
			fmt.Printf("Simulation rejected: %s\n", res.Error)
			return nil
		}

		fmt.Printf("%s, %s (%0.f km)\n", res.Commodity, res.Mode, res.DistanceKm)
		fmt.Printf("Buy:  ₹%.2f/t\n", res.BuyPriceINRPerTonne)
		fmt.Printf("Sell: ₹%.2f/t\n", res.SellPriceINRPerTonne)
		fmt.Printf("Logistics: ₹%.2f\n", res.LogisticsCostINR)
		fmt.Printf("Net profit: ₹%.2f (ROI %.1f%%) for %.1f t\n",
			res.NetProfitINR, res.ROIPercent, res.QtyTonnes)
		if res.Profitable {
			fmt.Println("Profitable: yes")
		} else {
			fmt.Println("Profitable: no")
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simCommodity, "commodity", "Wheat", "commodity name")
	simulateCmd.Flags().StringVar(&simSource, "source", "Mumbai Port", "source port/market")
	simulateCmd.Flags().StringVar(&simDestination, "destination", "", "destination port/market")
	simulateCmd.Flags().Float64Var(&simQty, "qty", 20, "quantity in tonnes")
	simulateCmd.Flags().BoolVar(&simDomestic, "domestic", false, "domestic trade mode")
}
