package catalog

import (
	"context"
	"errors"
	"testing"

	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogRepo struct {
	names     []models.ServiceName
	createErr error
	created   []models.ServiceOffering
}

func (s *stubCatalogRepo) ListAll(ctx context.Context) ([]models.ServiceOffering, error) {
	return s.created, nil
}

func (s *stubCatalogRepo) ListNames(ctx context.Context) ([]models.ServiceName, error) {
	return s.names, nil
}

func (s *stubCatalogRepo) Create(ctx context.Context, o *models.ServiceOffering) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.created = append(s.created, *o)
	return "65a000000000000000000001", nil
}

func TestAddOffering(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, nil)

	res, err := svc.AddOffering(context.Background(), models.ServiceOffering{Name: "Cleaning", Price: 100, Slots: []string{"9AM"}})
	require.NoError(t, err)
	assert.Equal(t, &models.InsertResult{Acknowledged: true, InsertedID: "65a000000000000000000001"}, res)
	require.Len(t, repo.created, 1)

	repo.createErr = catalogRepo.ErrDuplicateName
	_, err = svc.AddOffering(context.Background(), models.ServiceOffering{Name: "Cleaning", Price: 100})
	assert.ErrorIs(t, err, ErrDuplicateService)

	repo.createErr = errors.New("socket closed")
	_, err = svc.AddOffering(context.Background(), models.ServiceOffering{Name: "Whitening", Price: 50})
	assert.ErrorContains(t, err, "socket closed")
	assert.NotErrorIs(t, err, ErrDuplicateService)
}

func TestListSpecialities(t *testing.T) {
	repo := &stubCatalogRepo{names: []models.ServiceName{{Name: "Cleaning"}, {Name: "Whitening"}}}
	names, err := NewCatalogService(repo, nil).ListSpecialities(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 2)
}
