package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inventory.GO/config"
	summaryService "inventory.GO/service/summary"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the inventory dashboard summary",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		sum, err := summaryService.NewService(db).Get()
		if err != nil {
			fmt.Printf("Summary failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf(`
=== Inventory Dashboard ===
Inventory remaining:   %d
Products on sale:      %d
Warehouse quantity:    %d
Total inventory value: %s
===========================
`, sum.InventoryRemaining, sum.ProductsOnSale, sum.WarehouseCount, sum.TotalInventoryValue.StringFixed(2))
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
