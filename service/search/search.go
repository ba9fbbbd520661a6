package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/mitchellh/mapstructure"

	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
)

var (
	serviceInstance *Service
	serviceOnce     sync.Once
)

// GetService returns the singleton search service.
func GetService() *Service {
	serviceOnce.Do(func() {
		serviceInstance = NewService()
	})
	return serviceInstance
}

// Service queries the menu index in Elasticsearch, falling back to a SQL
// LIKE scan when ES is not configured or unreachable.
type Service struct {
	client *elasticsearch.Client
	index  string
}

func NewService() *Service {
	host := os.Getenv("ELASTICSEARCH_HOST")
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "restaurant_menu"
	}
	if host == "" {
		return &Service{index: index}
	}

	cfg := elasticsearch.Config{Addresses: []string{host}}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &Service{index: index}
	}
	return &Service{client: client, index: index}
}

// Hit is one search result row.
type Hit struct {
	ID       uint    `json:"id" mapstructure:"id"`
	Name     string  `json:"name" mapstructure:"name"`
	Price    int     `json:"price" mapstructure:"price"`
	ImageURL *string `json:"image_url,omitempty" mapstructure:"image_url"`
}

// numberToIntHook coerces ES float64 numerics into int/uint fields.
func numberToIntHook() mapstructure.DecodeHookFuncKind {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.Float64 {
			return data, nil
		}
		f := data.(float64)
		switch to {
		case reflect.Int:
			return int(f), nil
		case reflect.Uint:
			return uint(f), nil
		}
		return data, nil
	}
}

// Search runs a match query against the menu index. limit caps results.
func (s *Service) Search(ctx context.Context, query string, limit int, products *catalogRepo.ProductRepository) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}
	if s.client == nil {
		return s.sqlFallback(query, limit, products)
	}

	body := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": map[string]interface{}{
					"query":     query,
					"fuzziness": "AUTO",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		// ES down: degrade to SQL rather than failing the menu
		return s.sqlFallback(query, limit, products)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		var hit Hit
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       numberToIntHook(),
			Result:           &hit,
			TagName:          "mapstructure",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(h.Source); err != nil {
			continue
		}
		out = append(out, hit)
	}
	return out, nil
}

func (s *Service) sqlFallback(query string, limit int, products *catalogRepo.ProductRepository) ([]Hit, error) {
	rows, err := products.SearchByName(query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Hit, 0, len(rows))
	for _, p := range rows {
		out = append(out, Hit{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL})
	}
	return out, nil
}
