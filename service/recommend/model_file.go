package recommend

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// exportedModel is the JSON layout the training pipeline exports: per-user
// predicted scores plus a global fallback for cold users.
type exportedModel struct {
	Users  map[string]map[string]float64 `json:"users"`
	Global map[string]float64            `json:"global"`
}

type fileScorer struct {
	model exportedModel
}

func (f *fileScorer) Predict(userID, productID uint) (float64, error) {
	pid := strconv.FormatUint(uint64(productID), 10)
	if scores, ok := f.model.Users[strconv.FormatUint(uint64(userID), 10)]; ok {
		if s, ok := scores[pid]; ok {
			return s, nil
		}
	}
	return f.model.Global[pid], nil
}

// LoadFromFiles loads the exported model and product id universe. Callers
// treat an error as fail-soft: log a warning and leave the service
// unavailable instead of crashing the process.
func (s *Service) LoadFromFiles(modelPath, idsPath string) error {
	raw, err := os.ReadFile(modelPath)
	if err != nil {
		return fmt.Errorf("recommend: read model: %w", err)
	}
	var model exportedModel
	if err := json.Unmarshal(raw, &model); err != nil {
		return fmt.Errorf("recommend: parse model: %w", err)
	}

	raw, err = os.ReadFile(idsPath)
	if err != nil {
		return fmt.Errorf("recommend: read product ids: %w", err)
	}
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err != nil {
		return fmt.Errorf("recommend: parse product ids: %w", err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("recommend: empty product id universe")
	}

	s.UseModel(&fileScorer{model: model}, ids)
	return nil
}
