package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/repository"
)

// aiFallback is shown whenever the recommendation backend misbehaves; the
// feature is a non-critical enhancement and must never surface an error.
const aiFallback = "Désolé, nos experts IA sont momentanément indisponibles. Veuillez contacter notre agence en Zone 4."

type AIService struct {
	ai  repository.AIService
	log *zap.Logger
}

func NewAIService(ai repository.AIService, log *zap.Logger) *AIService {
	return &AIService{ai: ai, log: log}
}

func (s *AIService) Recommend(ctx context.Context, userNeeds string) string {
	recommendation, err := s.ai.Recommend(ctx, userNeeds)
	if err != nil {
		s.log.Warn("recommandation IA indisponible", zap.Error(err))
		return aiFallback
	}
	return recommendation
}
