package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepository
	log  *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) GetAll(ctx context.Context) []domain.Category {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des catégories", zap.Error(err))
		return []domain.Category{}
	}
	return categories
}

func (s *CategoryService) Create(ctx context.Context, category domain.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return ValidationError("Le nom de la catégorie est requis.")
	}
	if err := s.repo.Save(ctx, category); err != nil {
		s.log.Error("erreur lors de la création de la catégorie", zap.Error(err))
		return err
	}
	return nil
}

func (s *CategoryService) Update(ctx context.Context, id string, category domain.Category) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant de la catégorie est requis.")
	}
	if strings.TrimSpace(category.Name) == "" {
		return ValidationError("Le nom de la catégorie est requis.")
	}
	if err := s.repo.Update(ctx, id, category); err != nil {
		s.log.Error("erreur lors de la mise à jour de la catégorie", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant de la catégorie est requis.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("erreur lors de la suppression de la catégorie", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
