package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/application/contact/dto"
	"stayops/internal/domain/contact"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type mockContactRepository struct {
	createFunc  func(ctx context.Context, c *contact.Contact) error
	getByIDFunc func(ctx context.Context, id uint) (*contact.Contact, error)
	listFunc    func(ctx context.Context, offset, limit int) ([]*contact.Contact, int64, error)
	updateFunc  func(ctx context.Context, c *contact.Contact) error
	deleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id uint) (*contact.Contact, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) List(ctx context.Context, offset, limit int) ([]*contact.Contact, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func storedContact(t *testing.T, id uint) *contact.Contact {
	t.Helper()
	now := time.Now()
	c, err := contact.ReconstructContact(id, "Ana", "Costa", "ana@hotel.example", "", "Harbor View", "Reception", now, now)
	require.NoError(t, err)
	return c
}

func TestCreateContactUseCase_Execute(t *testing.T) {
	repo := &mockContactRepository{
		createFunc: func(_ context.Context, c *contact.Contact) error {
			return c.SetID(9)
		},
	}
	uc := NewCreateContactUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.ContactPayload{
		FirstName: "Ana",
		Email:     "ana@hotel.example",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), resp.ID)
}

func TestCreateContactUseCase_Execute_InvalidEmail(t *testing.T) {
	uc := NewCreateContactUseCase(&mockContactRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.ContactPayload{
		FirstName: "Ana",
		Email:     "not-an-email",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestUpdateContactUseCase_Execute(t *testing.T) {
	var updated *contact.Contact
	repo := &mockContactRepository{
		getByIDFunc: func(_ context.Context, id uint) (*contact.Contact, error) {
			return storedContact(t, id), nil
		},
		updateFunc: func(_ context.Context, c *contact.Contact) error {
			updated = c
			return nil
		},
	}
	uc := NewUpdateContactUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 9, dto.ContactPayload{
		FirstName: "Ana",
		LastName:  "Costa-Silva",
	})
	require.NoError(t, err)

	assert.Equal(t, "Costa-Silva", resp.LastName)
	require.NotNil(t, updated)
	assert.Equal(t, "Costa-Silva", updated.LastName())
}

func TestListContactsUseCase_Execute(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(_ context.Context, offset, limit int) ([]*contact.Contact, int64, error) {
			assert.Equal(t, 20, offset)
			assert.Equal(t, 20, limit)
			return []*contact.Contact{storedContact(t, 9)}, 21, nil
		},
	}
	uc := NewListContactsUseCase(repo, logger.NewLogger())

	results, total, err := uc.Execute(context.Background(), 20, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, results, 1)
}

func TestDeleteContactUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockContactRepository{
		deleteFunc: func(_ context.Context, _ uint) error {
			return apperrors.NewNotFoundError("contact not found")
		},
	}
	uc := NewDeleteContactUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), 99)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
