package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
)

func NewAPIAIService(client *api.Client) *APIAIService {
	return &APIAIService{client: client}
}

type APIAIService struct {
	client *api.Client
}

func (s *APIAIService) Recommend(ctx context.Context, userNeeds string) (string, error) {
	var result struct {
		Recommendation string `json:"recommendation"`
	}
	body := map[string]string{"userNeeds": userNeeds}
	if err := s.client.Post(ctx, "/ai/recommend", body, &result); err != nil {
		return "", err
	}
	return result.Recommendation, nil
}
