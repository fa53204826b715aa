// Package usecases implements the contact book operations.
package usecases

import (
	"context"

	"stayops/internal/application/contact/dto"
	"stayops/internal/domain/contact"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type CreateContactUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewCreateContactUseCase(repo contact.Repository, log logger.Interface) *CreateContactUseCase {
	return &CreateContactUseCase{repo: repo, logger: log.Named("usecase.create_contact")}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, req dto.ContactPayload) (*dto.ContactResponse, error) {
	c, err := contact.NewContact(req.FirstName, req.LastName, req.Email, req.Phone, req.Company, req.Position)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create contact", "error", err)
		return nil, err
	}

	uc.logger.Infow("contact created", "contact_id", c.ID())
	return dto.NewContactResponse(c), nil
}

type GetContactUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewGetContactUseCase(repo contact.Repository, log logger.Interface) *GetContactUseCase {
	return &GetContactUseCase{repo: repo, logger: log.Named("usecase.get_contact")}
}

func (uc *GetContactUseCase) Execute(ctx context.Context, id uint) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewContactResponse(c), nil
}

type ListContactsUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewListContactsUseCase(repo contact.Repository, log logger.Interface) *ListContactsUseCase {
	return &ListContactsUseCase{repo: repo, logger: log.Named("usecase.list_contacts")}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, offset, limit int) ([]*dto.ContactResponse, int64, error) {
	contacts, total, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		uc.logger.Errorw("failed to list contacts", "error", err)
		return nil, 0, err
	}
	return dto.NewContactResponses(contacts), total, nil
}

type UpdateContactUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewUpdateContactUseCase(repo contact.Repository, log logger.Interface) *UpdateContactUseCase {
	return &UpdateContactUseCase{repo: repo, logger: log.Named("usecase.update_contact")}
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, id uint, req dto.ContactPayload) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Update(req.FirstName, req.LastName, req.Email, req.Phone, req.Company, req.Position); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update contact", "contact_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("contact updated", "contact_id", id)
	return dto.NewContactResponse(c), nil
}

type DeleteContactUseCase struct {
	repo   contact.Repository
	logger logger.Interface
}

func NewDeleteContactUseCase(repo contact.Repository, log logger.Interface) *DeleteContactUseCase {
	return &DeleteContactUseCase{repo: repo, logger: log.Named("usecase.delete_contact")}
}

func (uc *DeleteContactUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("contact deleted", "contact_id", id)
	return nil
}
