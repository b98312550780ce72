package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inventory.GO/config"
	allocationService "inventory.GO/service/allocation"
	salesService "inventory.GO/service/sales"
)

var (
	buyProductID  uint
	buyQuantity   int
	sellOrderID   uint
	sellProductID uint
	sellQuantity  int
)

var buyCmd = &cobra.Command{
	Use:   "order:buy",
	Short: "Place a purchase order: source from cheapest suppliers, allocate across warehouses",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		res, err := allocationService.NewService(db).PlaceBuyOrder(buyProductID, buyQuantity)
		if err != nil {
			fmt.Printf("Buy failed: %v\n", err)
			os.Exit(1)
		}
		if !res.Accepted {
			fmt.Printf("PO %d rejected (%s shortfall): %d of %d units unallocated\n",
				res.OrderID, res.Shortfall.Cause, res.Shortfall.Unallocated, res.Shortfall.Requested)
			return
		}
		fmt.Printf("PO %d accepted: %d units of product %d for %s\n",
			res.OrderID, buyQuantity, buyProductID, res.TotalCost.StringFixed(2))
	},
}

var sellCmd = &cobra.Command{
	Use:   "order:sell",
	Short: "Sell stock against an existing sales order",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		err = salesService.NewService(db).PlaceSale(sellOrderID, sellProductID, sellQuantity)
		if errors.Is(err, salesService.ErrInsufficientStock) {
			fmt.Printf("Sale rejected: insufficient stock for product %d\n", sellProductID)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Sale failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sold %d units of product %d on order %d\n", sellQuantity, sellProductID, sellOrderID)
	},
}

func init() {
	buyCmd.Flags().UintVarP(&buyProductID, "product", "p", 0, "Product ID")
	buyCmd.Flags().IntVarP(&buyQuantity, "quantity", "q", 0, "Quantity to purchase")
	_ = buyCmd.MarkFlagRequired("product")
	_ = buyCmd.MarkFlagRequired("quantity")

	sellCmd.Flags().UintVarP(&sellOrderID, "order", "o", 0, "Sales order ID")
	sellCmd.Flags().UintVarP(&sellProductID, "product", "p", 0, "Product ID")
	sellCmd.Flags().IntVarP(&sellQuantity, "quantity", "q", 0, "Quantity to sell")
	_ = sellCmd.MarkFlagRequired("order")
	_ = sellCmd.MarkFlagRequired("product")
	_ = sellCmd.MarkFlagRequired("quantity")

	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(sellCmd)
}
