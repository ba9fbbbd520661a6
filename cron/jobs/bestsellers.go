package jobs

import (
	"context"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/DoTranTuyen/fullstack-dath/service/report"
)

// OpenDB supplies the database handle for jobs. The config package wires
// it at init time; jobs must not import config back, config imports this
// package for the job table.
var OpenDB func() (*gorm.DB, error)

// BestSellersJob refreshes the daily best-seller snapshot. Optional first
// argument overrides the top-N count (default 10).
func BestSellersJob(args ...string) {
	topN := 10
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			topN = n
		}
	}
	if OpenDB == nil {
		log.Println("bestsellers: no database opener wired, skipping")
		return
	}
	db, err := OpenDB()
	if err != nil {
		log.Printf("bestsellers: db connect failed: %v", err)
		return
	}
	svc := report.NewService(db)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	n, err := svc.SnapshotBestSellers(ctx, time.Now(), topN)
	if err != nil {
		log.Printf("bestsellers: snapshot failed: %v", err)
		return
	}
	log.Printf("bestsellers: wrote %d rows", n)
}
