package services

import (
	"testing"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExpenditureStore is an in-memory ExpenditureRepository.
type fakeExpenditureStore struct {
	ExpenditureRepositoryStub
	expenditures map[int64]*models.Expenditure
	nextID       int64
}

func newFakeExpenditureStore() *fakeExpenditureStore {
	return &fakeExpenditureStore{expenditures: map[int64]*models.Expenditure{}, nextID: 1}
}

func (f *fakeExpenditureStore) CreateExpenditure(executor repositories.SQLExecutor, exp *models.Expenditure) (int64, error) {
	stored := *exp
	stored.ID = f.nextID
	f.expenditures[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakeExpenditureStore) GetExpenditureByID(id int64) (*models.Expenditure, error) {
	e, ok := f.expenditures[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeExpenditureStore) UpdateExpenditure(executor repositories.SQLExecutor, exp *models.Expenditure) error {
	if _, ok := f.expenditures[exp.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *exp
	f.expenditures[exp.ID] = &stored
	return nil
}

func (f *fakeExpenditureStore) DeleteExpenditure(executor repositories.SQLExecutor, id int64) error {
	if _, ok := f.expenditures[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.expenditures, id)
	return nil
}

func TestCreateExpenditure(t *testing.T) {
	svc := NewExpenditureService(newFakeExpenditureStore(), nil)

	exp, err := svc.CreateExpenditure(adminActor, CreateExpenditureRequest{
		Date:        "2026-09-01",
		Category:    models.CategoryMaintenance,
		Amount:      500,
		Description: "Pool pump repair",
	})

	require.NoError(t, err)
	assert.Equal(t, models.CategoryMaintenance, exp.Category)
	assert.Equal(t, 500.0, exp.Amount)
}

func TestCreateExpenditureValidation(t *testing.T) {
	svc := NewExpenditureService(newFakeExpenditureStore(), nil)

	tests := []struct {
		name    string
		req     CreateExpenditureRequest
		wantErr error
	}{
		{
			name:    "bad date",
			req:     CreateExpenditureRequest{Date: "someday", Category: models.CategoryOther, Amount: 10, Description: "x"},
			wantErr: ErrDateFormat,
		},
		{
			name:    "category outside the closed set",
			req:     CreateExpenditureRequest{Date: "2026-09-01", Category: "Marketing", Amount: 10, Description: "x"},
			wantErr: ErrExpenditureValidation,
		},
		{
			name:    "non-positive amount",
			req:     CreateExpenditureRequest{Date: "2026-09-01", Category: models.CategoryOther, Amount: 0, Description: "x"},
			wantErr: ErrExpenditureValidation,
		},
		{
			name:    "blank description",
			req:     CreateExpenditureRequest{Date: "2026-09-01", Category: models.CategoryOther, Amount: 10, Description: " "},
			wantErr: ErrExpenditureValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateExpenditure(adminActor, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateExpenditureRequiresAdmin(t *testing.T) {
	svc := NewExpenditureService(newFakeExpenditureStore(), nil)

	_, err := svc.CreateExpenditure(memberActor, CreateExpenditureRequest{
		Date: "2026-09-01", Category: models.CategoryOther, Amount: 10, Description: "x",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateExpenditurePartialChange(t *testing.T) {
	svc := NewExpenditureService(newFakeExpenditureStore(), nil)
	created, err := svc.CreateExpenditure(adminActor, CreateExpenditureRequest{
		Date: "2026-09-01", Category: models.CategoryUtilities, Amount: 120, Description: "Electricity",
	})
	require.NoError(t, err)

	amount := 150.0
	updated, err := svc.UpdateExpenditure(adminActor, created.ID, UpdateExpenditureRequest{Amount: &amount})

	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Amount)
	assert.Equal(t, models.CategoryUtilities, updated.Category)
	assert.Equal(t, "Electricity", updated.Description)
}

func TestUpdateExpenditureRejectsInvalidCategory(t *testing.T) {
	svc := NewExpenditureService(newFakeExpenditureStore(), nil)
	created, err := svc.CreateExpenditure(adminActor, CreateExpenditureRequest{
		Date: "2026-09-01", Category: models.CategoryUtilities, Amount: 120, Description: "Electricity",
	})
	require.NoError(t, err)

	bad := "Sponsorship"
	_, err = svc.UpdateExpenditure(adminActor, created.ID, UpdateExpenditureRequest{Category: &bad})

	assert.ErrorIs(t, err, ErrExpenditureValidation)
}

func TestDeleteExpenditure(t *testing.T) {
	store := newFakeExpenditureStore()
	svc := NewExpenditureService(store, nil)
	created, err := svc.CreateExpenditure(adminActor, CreateExpenditureRequest{
		Date: "2026-09-01", Category: models.CategoryOther, Amount: 10, Description: "Misc",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpenditure(adminActor, created.ID))
	assert.ErrorIs(t, svc.DeleteExpenditure(adminActor, created.ID), ErrExpenditureNotFound)
}
