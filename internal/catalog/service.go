package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

var validCategories = map[string]bool{
	CategorySignature: true,
	CategoryDryRub:    true,
	CategoryDipping:   true,
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) ListSauces(ctx context.Context) ([]Sauce, error) {
	return s.repo.ListSauces(ctx)
}

func (s *Service) ListPackages(ctx context.Context) ([]CateringPackage, error) {
	return s.repo.ListPackages(ctx)
}

// ResolveSauces maps a user's selection to normalized catalog
// records, in selection order. Unknown ids are an error: the
// UI only offers ids the catalog returned.
func (s *Service) ResolveSauces(
	ctx context.Context,
	ids []string,
) ([]Sauce, error) {

	sauces, err := s.repo.GetSauces(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(sauces) != len(ids) {
		return nil, errors.New("unknown sauce in selection")
	}
	return sauces, nil
}

// --------------------------------------------------
// Create Sauce (ADMIN)
// --------------------------------------------------
func (s *Service) CreateSauce(ctx context.Context, sauce *Sauce) error {
	if sauce.ID == "" || sauce.Name == "" {
		return errors.New("sauce id and name are required")
	}
	if !validCategories[sauce.Category] {
		return errors.New("invalid sauce category")
	}
	if sauce.HeatLevel < 0 || sauce.HeatLevel > 5 {
		return errors.New("heat level must be between 0 and 5")
	}
	return s.repo.CreateSauce(ctx, sauce)
}

// --------------------------------------------------
// Upload Sauce Image (ADMIN)
// --------------------------------------------------
func (s *Service) UploadSauceImage(
	ctx context.Context,
	sauceID string,
	file multipart.File,
	filename string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"sauces/%s/%s%s",
		sauceID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetSauceImage(ctx, sauceID, url); err != nil {
		return "", err
	}

	return url, nil
}
