package dining

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/DoTranTuyen/fullstack-dath/config"
	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	diningRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/dining"
)

// Uploader pushes a rendered asset to storage and returns its public URL.
type Uploader interface {
	Upload(name string, data []byte) (string, error)
}

// LocalUploader writes assets under the configured media directory.
type LocalUploader struct {
	Dir     string
	BaseURL string
}

func (u *LocalUploader) Upload(name string, data []byte) (string, error) {
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(u.Dir, name), data, 0o644); err != nil {
		return "", err
	}
	return strings.TrimSuffix(u.BaseURL, "/") + "/" + name, nil
}

// Service manages tables and their QR join codes.
type Service struct {
	db       *gorm.DB
	tables   *diningRepo.TableRepository
	uploader Uploader
}

func NewService(db *gorm.DB, uploader Uploader) *Service {
	if uploader == nil {
		cfg := config.AppConfig
		dir, base := "media", "/media/"
		if cfg != nil {
			dir, base = cfg.MediaDir, cfg.MediaURL
		}
		uploader = &LocalUploader{Dir: dir, BaseURL: base}
	}
	return &Service{db: db, tables: diningRepo.NewTableRepository(db), uploader: uploader}
}

// JoinURL is the link a customer lands on after scanning the table code.
func JoinURL(tableNumber int) string {
	base := "http://localhost:3000"
	if config.AppConfig != nil {
		base = config.AppConfig.FrontEndURL
	}
	return fmt.Sprintf("%s/login-menu/?table_number=%d", base, tableNumber)
}

// Save persists a table, assigning the next sequential number when absent
// and (re)generating its QR asset when missing or forced.
func (s *Service) Save(ctx context.Context, t *diningEntity.Table, forceQR bool) error {
	if t.TableNumber == 0 {
		n, err := s.tables.NextTableNumber()
		if err != nil {
			return err
		}
		t.TableNumber = n
	}

	if t.QRImageURL == nil || *t.QRImageURL == "" || forceQR {
		url, err := s.generateQR(t.TableNumber)
		if err != nil {
			return fmt.Errorf("dining: qr for table %d: %w", t.TableNumber, err)
		}
		t.QRImageURL = &url
	}

	return s.tables.Save(t)
}

// generateQR renders the join URL as a 512x512 PNG and uploads it.
func (s *Service) generateQR(tableNumber int) (string, error) {
	raw, err := qrcode.Encode(JoinURL(tableNumber), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	resized := imaging.Resize(img, 512, 512, imaging.NearestNeighbor)
	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return "", err
	}
	return s.uploader.Upload(fmt.Sprintf("table_%d_qr.png", tableNumber), buf.Bytes())
}
