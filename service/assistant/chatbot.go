package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"

	chatEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/chat"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	chatRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/chat"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
)

var (
	// ErrEmptyMessage rejects blank input before any external call.
	ErrEmptyMessage = errors.New("assistant: message is required")
	// ErrUnavailable signals a missing or failing completion backend.
	ErrUnavailable = errors.New("assistant: completion service unavailable")
)

// historyLimit bounds history replay to cap the completion context.
const historyLimit = 50

// systemPrompt is the FoodieBot persona. The price rule is a hard
// constraint: the bot must never invent one.
const systemPrompt = `Bạn là **FoodieBot**, trợ lý AI siêu dễ thương và nhiệt tình của khách hàng nhà hàng.

**Nhiệm vụ chính của bạn**:
- Gợi ý món ăn & đồ uống theo sở thích khách hàng
- Gợi ý món bán chạy
- Gợi ý món theo thời gian trong ngày
- Gợi ý món theo tâm trạng khách
- Gợi ý combo thông minh
- Hỗ trợ thông tin món ăn (giá, mô tả, nguyên liệu)

**Phong cách trả lời**:
- Dễ thương, vui vẻ, tích cực, thân thiện
- Trả lời ngắn gọn – không quá dài
- Luôn ưu tiên gợi ý món trong thực đơn thật của nhà hàng (từ DB)
- Luôn xưng "mình" hoặc "mình là FoodieBot"

**Quy tắc quan trọng**:
- Nếu khách hỏi món không có trong hệ thống → đề xuất món tương tự
- Không bao giờ bịa ra giá
- Khi trả lời luôn ưu tiên dữ liệu thật từ database`

// Service is the conversational ordering assistant: persona + fresh
// grounding context + bounded history, delegated to an external completion
// model and persisted emoji-free.
type Service struct {
	llm      llms.Model
	history  *chatRepo.ChatHistoryRepository
	products *catalogRepo.ProductRepository
	details  *salesRepo.OrderDetailRepository
	now      func() time.Time
}

func NewService(db *gorm.DB, llm llms.Model) *Service {
	return &Service{
		llm:      llm,
		history:  chatRepo.NewChatHistoryRepository(db),
		products: catalogRepo.NewProductRepository(db),
		details:  salesRepo.NewOrderDetailRepository(db),
		now:      time.Now,
	}
}

// Available reports whether a completion backend is wired.
func (s *Service) Available() bool {
	return s.llm != nil
}

// Ask answers one customer message. The reply is returned as produced by
// the model; the persisted history record has emoji stripped from both
// sides.
func (s *Service) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if s.llm == nil {
		return "", ErrUnavailable
	}

	gc, err := s.BuildContext(ctx)
	if err != nil {
		return "", err
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
	}
	recent, err := s.history.Recent(historyLimit)
	if err != nil {
		return "", err
	}
	for _, h := range recent {
		messages = append(messages,
			llms.TextParts(llms.ChatMessageTypeHuman, h.UserMessage),
			llms.TextParts(llms.ChatMessageTypeAI, h.BotReply),
		)
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, buildPrompt(gc, message)))

	resp, err := s.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	reply := resp.Choices[0].Content

	entry := &chatEntity.ChatHistory{
		UserMessage: RemoveEmoji(message),
		BotReply:    RemoveEmoji(reply),
	}
	if err := s.history.Create(entry); err != nil {
		return "", err
	}
	return reply, nil
}

func buildPrompt(gc *GroundingContext, message string) string {
	var b strings.Builder
	b.WriteString("Dữ liệu thật từ database:\n\n")
	b.WriteString("### Món bán chạy:\n")
	for _, line := range gc.BestSellers {
		b.WriteString("- " + line + "\n")
	}
	b.WriteString("\n### Toàn bộ món trong menu:\n")
	b.WriteString(strings.Join(gc.MenuItems, ", "))
	b.WriteString("\n\n### Gợi ý theo thời gian trong ngày:\n")
	b.WriteString(strings.Join(gc.TodaySuggested, ", "))
	b.WriteString("\n\nNgười dùng hỏi: ")
	b.WriteString(message)
	return b.String()
}
