package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

type ProductService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) GetAll(ctx context.Context) []domain.Product {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des produits", zap.Error(err))
		return []domain.Product{}
	}
	return products
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ValidationError("L'identifiant du produit est requis.")
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("erreur lors du chargement du produit", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, product domain.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return ValidationError("Le nom du produit est requis.")
	}
	if strings.TrimSpace(product.Category) == "" {
		return ValidationError("La catégorie est requise.")
	}
	if strings.TrimSpace(product.Brand) == "" {
		return ValidationError("La marque est requise.")
	}
	if strings.TrimSpace(product.Ref) == "" {
		return ValidationError("La référence est requise.")
	}
	if err := s.repo.Save(ctx, product); err != nil {
		s.log.Error("erreur lors de la création du produit", zap.Error(err))
		return err
	}
	return nil
}

func (s *ProductService) Update(ctx context.Context, id string, product domain.Product) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant du produit est requis.")
	}
	if strings.TrimSpace(product.Name) == "" {
		return ValidationError("Le nom du produit est requis.")
	}
	if err := s.repo.Update(ctx, id, product); err != nil {
		s.log.Error("erreur lors de la mise à jour du produit", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant du produit est requis.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("erreur lors de la suppression du produit", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
