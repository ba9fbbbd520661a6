package chat

import "time"

// ChatHistory represents the lichsu_tinnhan table: one persisted assistant
// exchange. Both sides are stored emoji-stripped.
type ChatHistory struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserMessage string    `gorm:"column:tin_nhan_nguoi_dung;not null" json:"user_message"`
	BotReply    string    `gorm:"column:tin_nhan_bot;not null" json:"bot_reply"`
	CreatedAt   time.Time `gorm:"column:thoi_gian_tao;autoCreateTime;index" json:"created_at"`
}

func (ChatHistory) TableName() string {
	return "lichsu_tinnhan"
}
