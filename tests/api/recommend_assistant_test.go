package apitest

import (
	"context"
	"net/http"
	"testing"

	"github.com/tmc/langchaingo/llms"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	assistantService "github.com/DoTranTuyen/fullstack-dath/service/assistant"
	recommendService "github.com/DoTranTuyen/fullstack-dath/service/recommend"
)

type stubScorer struct {
	scores map[uint]float64
}

func (s stubScorer) Predict(userID, productID uint) (float64, error) {
	return s.scores[productID], nil
}

func TestRecommendAPI_UnavailableWithoutModel(t *testing.T) {
	db := testDB(t)
	svc := recommendService.NewService(db)
	e := newServer(t, db, svc, nil)

	rec := doJSON(e, http.MethodGet, "/api/recommendations?user_id=1", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("no model status = %d, want 503", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/recommendations", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing user_id status = %d, want 400", rec.Code)
	}
}

func TestRecommendAPI_RankedSuggestions(t *testing.T) {
	db := testDB(t)

	cat := catalogEntity.Category{Name: "Món chính"}
	db.Create(&cat)
	a := catalogEntity.Product{Name: "Phở bò", CategoryID: cat.ID, Price: 55000, Status: catalogEntity.StatusActive}
	b := catalogEntity.Product{Name: "Bún bò", CategoryID: cat.ID, Price: 50000, Status: catalogEntity.StatusActive}
	db.Create(&a)
	db.Create(&b)

	svc := recommendService.NewService(db)
	svc.UseModel(stubScorer{scores: map[uint]float64{a.ID: 0.4, b.ID: 0.9}}, []uint{a.ID, b.ID})
	e := newServer(t, db, svc, nil)

	rec := doJSON(e, http.MethodGet, "/api/recommendations?user_id=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("recommendations status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out []recommendService.Suggestion
	decode(t, rec, &out)
	if len(out) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(out))
	}
	if out[0].Name != "Bún bò" {
		t.Errorf("top suggestion = %q, want Bún bò (higher score)", out[0].Name)
	}
}

type cannedLLM struct {
	reply string
}

func (f cannedLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f cannedLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.reply, nil
}

func TestAssistantAPI_StatusCodes(t *testing.T) {
	db := testDB(t)

	t.Run("empty message", func(t *testing.T) {
		svc := assistantService.NewService(db, cannedLLM{reply: "ok"})
		e := newServer(t, db, nil, svc)
		rec := doJSON(e, http.MethodGet, "/api/assistant/chat?message=", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("empty message status = %d, want 400", rec.Code)
		}
	})

	t.Run("no backend", func(t *testing.T) {
		svc := assistantService.NewService(db, nil)
		e := newServer(t, db, nil, svc)
		rec := doJSON(e, http.MethodGet, "/api/assistant/chat?message=hi", nil)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("nil backend status = %d, want 503", rec.Code)
		}
	})

	t.Run("reply", func(t *testing.T) {
		svc := assistantService.NewService(db, cannedLLM{reply: "Mình gợi ý Phở bò nhé!"})
		e := newServer(t, db, nil, svc)
		rec := doJSON(e, http.MethodGet, "/api/assistant/chat?message=%C4%83n+g%C3%AC+ngon", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("chat status = %d, body %s", rec.Code, rec.Body.String())
		}
		var body struct {
			Reply string `json:"reply"`
		}
		decode(t, rec, &body)
		if body.Reply != "Mình gợi ý Phở bò nhé!" {
			t.Errorf("reply = %q", body.Reply)
		}
	})
}
