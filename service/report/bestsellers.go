package report

import (
	"context"
	"time"

	"gorm.io/gorm"

	reportEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/report"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
)

// Service materializes sales reports. The live best-seller query stays in
// the sales repository; this writes the sanpham_banchay snapshot rows the
// dashboard reads.
type Service struct {
	db      *gorm.DB
	details *salesRepo.OrderDetailRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, details: salesRepo.NewOrderDetailRepository(db)}
}

// SnapshotBestSellers writes one report row per top product for the given
// report date. Re-running for the same date replaces that date's rows.
func (s *Service) SnapshotBestSellers(ctx context.Context, reportDate time.Time, topN int) (int, error) {
	rows, err := s.details.BestSellers(topN)
	if err != nil {
		return 0, err
	}
	day := reportDate.Truncate(24 * time.Hour)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ngay_bao_cao = ?", day).
			Delete(&reportEntity.BestSellingProduct{}).Error; err != nil {
			return err
		}
		for _, r := range rows {
			rec := reportEntity.BestSellingProduct{
				ProductID:    r.ProductID,
				SoldQuantity: r.Total,
				ReportDate:   day,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
