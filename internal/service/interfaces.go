package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-medcare/models"
)

// AuthService is the identity resolution layer: account registration,
// credential checks and session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ConsentService interface {
	RecordConsent(ctx context.Context, req models.ConsentRequest) (models.ConsentRecord, error)
}

type AssessmentService interface {
	// SaveAssessment stores a submission, deriving the label from the score
	// when the request carries none.
	SaveAssessment(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error)
	// History returns the assessments of a raw identifier, newest first.
	History(ctx context.Context, identifier string) ([]models.Assessment, error)
}

// AdminService guards the operations that cross user boundaries.
type AdminService interface {
	// Authorize returns ErrUnauthorized unless key matches the configured
	// admin secret.
	Authorize(ctx context.Context, key string) error
	ExportCSV(ctx context.Context, w io.Writer) error
	PurgeUser(ctx context.Context, identifier string) (models.PurgeResult, error)
}

type PredictionService interface {
	ModelLoaded() bool
	Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error)
	PredictFused(ctx context.Context, req models.FusedRequest) (models.FusedPrediction, error)
}

type ChatService interface {
	LLMEnabled() bool
	// Chat answers from the keyword rules only.
	Chat(ctx context.Context, req models.ChatRequest) models.ChatReply
	// LLMChat may replace the generic reply with a language model answer.
	LLMChat(ctx context.Context, req models.ChatRequest) models.ChatReply
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AssessmentServiceWrapper defines middleware composition for
// AssessmentService.
type AssessmentServiceWrapper interface {
	Wrap(AssessmentService) AssessmentService
}
