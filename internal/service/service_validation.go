package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medcare/internal/validators"
	"github.com/MKhiriev/go-medcare/models"
)

// AuthValidationService checks register and login requests before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(v validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: v}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during register request validation: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during login request validation: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// AssessmentValidationService checks submissions before they reach the
// wrapped AssessmentService.
type AssessmentValidationService struct {
	inner     AssessmentService
	validator validators.Validator
}

func NewAssessmentValidationService(v validators.Validator) AssessmentServiceWrapper {
	return &AssessmentValidationService{validator: v}
}

func (v *AssessmentValidationService) SaveAssessment(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Assessment{}, fmt.Errorf("error during assessment validation before saving: %w", err)
	}
	return v.inner.SaveAssessment(ctx, req)
}

func (v *AssessmentValidationService) History(ctx context.Context, identifier string) ([]models.Assessment, error) {
	return v.inner.History(ctx, identifier)
}

func (v *AssessmentValidationService) Wrap(wrapped AssessmentService) AssessmentService {
	v.inner = wrapped
	return v
}
