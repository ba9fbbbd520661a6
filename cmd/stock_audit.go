package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DoTranTuyen/fullstack-dath/config"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	inventoryService "github.com/DoTranTuyen/fullstack-dath/service/inventory"
)

var auditIngredientID uint

var stockAuditCmd = &cobra.Command{
	Use:   "stock:audit",
	Short: "Replay the inventory ledger and compare against cached stock levels",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		ledger := inventoryService.NewLedger(db)
		ctx := context.Background()

		var ids []uint
		if auditIngredientID != 0 {
			ids = []uint{auditIngredientID}
		} else {
			ings, err := catalogRepo.NewIngredientRepository(db).All()
			if err != nil {
				fmt.Printf("Failed to list ingredients: %v\n", err)
				os.Exit(1)
			}
			for _, ing := range ings {
				ids = append(ids, ing.ID)
			}
		}

		drift := 0
		for _, id := range ids {
			res, err := ledger.Audit(ctx, id)
			if err != nil {
				fmt.Printf("  ingredient %d: audit failed: %v\n", id, err)
				continue
			}
			if res.Consistent {
				fmt.Printf("  ingredient %d: OK (stock=%d)\n", id, res.Cached)
				continue
			}
			drift++
			fmt.Printf("  ingredient %d: DRIFT cached=%d replayed=%d\n", id, res.Cached, res.Replayed)
		}
		if drift > 0 {
			fmt.Printf("%d ingredient(s) out of sync with the ledger.\n", drift)
			os.Exit(1)
		}
		fmt.Println("All ingredients consistent with the ledger.")
	},
}

func init() {
	stockAuditCmd.Flags().UintVarP(&auditIngredientID, "ingredient", "i", 0, "Audit a single ingredient by ID")
	rootCmd.AddCommand(stockAuditCmd)
}
