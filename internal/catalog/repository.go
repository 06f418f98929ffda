package catalog

import "context"

type Repository interface {
	ListSauces(ctx context.Context) ([]Sauce, error)
	GetSauces(ctx context.Context, ids []string) ([]Sauce, error)
	ListPackages(ctx context.Context) ([]CateringPackage, error)
	CreateSauce(ctx context.Context, s *Sauce) error
	SetSauceImage(ctx context.Context, sauceID, imageURL string) error
}
