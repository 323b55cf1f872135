package catalogRepo

import (
	"context"

	"doctorsportal/models"
)

// CatalogRepository defines access to the appointment service catalog.
type CatalogRepository interface {
	// ListAll returns every service offering with its full slot template.
	ListAll(ctx context.Context) ([]models.ServiceOffering, error)
	// ListNames returns the id and name of every offering.
	ListNames(ctx context.Context) ([]models.ServiceName, error)
	// Create seeds a new offering.
	Create(ctx context.Context, offering *models.ServiceOffering) (string, error)
}
