package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/validators"
	"github.com/MKhiriev/footy-tipping/models"
)

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// userValidationService validates requests and ids before handing them to
// the wrapped UserService. Violations are reported as ErrInvalidDataProvided.
type userValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &userValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *userValidationService) Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthenticateResponse, error) {
	if err := v.validate(ctx, "Authenticate", req); err != nil {
		return models.AuthenticateResponse{}, err
	}

	return v.inner.Authenticate(ctx, req)
}

func (v *userValidationService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := v.validate(ctx, "Register", req); err != nil {
		return err
	}

	return v.inner.Register(ctx, req)
}

func (v *userValidationService) Update(ctx context.Context, id int64, req models.UpdateRequest) error {
	if err := v.validate(ctx, "Update", id); err != nil {
		return err
	}
	if err := v.validate(ctx, "Update", req); err != nil {
		return err
	}

	return v.inner.Update(ctx, id, req)
}

func (v *userValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validate(ctx, "Delete", id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}

func (v *userValidationService) GetAll(ctx context.Context) ([]models.User, error) {
	return v.inner.GetAll(ctx)
}

func (v *userValidationService) GetByID(ctx context.Context, id int64) (models.User, error) {
	if err := v.validate(ctx, "GetByID", id); err != nil {
		return models.User{}, err
	}

	return v.inner.GetByID(ctx, id)
}

func (v *userValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *userValidationService) validate(ctx context.Context, op string, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userValidationService."+op).Msg("validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
