package chat

import (
	"gorm.io/gorm"

	chatEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/chat"
)

type ChatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) *ChatHistoryRepository {
	return &ChatHistoryRepository{db: db}
}

func (r *ChatHistoryRepository) Create(entry *chatEntity.ChatHistory) error {
	return r.db.Create(entry).Error
}

// Recent returns the latest n exchanges in chronological order. Replay is
// bounded to cap the completion context.
func (r *ChatHistoryRepository) Recent(n int) ([]chatEntity.ChatHistory, error) {
	if n <= 0 {
		n = 50
	}
	var rows []chatEntity.ChatHistory
	err := r.db.Order("thoi_gian_tao DESC, id DESC").Limit(n).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	// reverse to oldest-first for replay
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
