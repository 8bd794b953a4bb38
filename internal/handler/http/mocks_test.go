package http

import (
	"context"
	"io"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/service"
	"github.com/MKhiriev/go-medcare/models"
)

// Each mock implements one service interface. A nil function field makes
// the method panic, which surfaces unexpected calls in tests.

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockConsentService struct {
	recordFn func(ctx context.Context, req models.ConsentRequest) (models.ConsentRecord, error)
}

func (m *mockConsentService) RecordConsent(ctx context.Context, req models.ConsentRequest) (models.ConsentRecord, error) {
	return m.recordFn(ctx, req)
}

type mockAssessmentService struct {
	saveFn    func(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error)
	historyFn func(ctx context.Context, identifier string) ([]models.Assessment, error)
}

func (m *mockAssessmentService) SaveAssessment(ctx context.Context, req models.AssessmentRequest) (models.Assessment, error) {
	return m.saveFn(ctx, req)
}

func (m *mockAssessmentService) History(ctx context.Context, identifier string) ([]models.Assessment, error) {
	return m.historyFn(ctx, identifier)
}

type mockAdminService struct {
	authorizeFn func(ctx context.Context, key string) error
	exportFn    func(ctx context.Context, w io.Writer) error
	purgeFn     func(ctx context.Context, identifier string) (models.PurgeResult, error)
}

func (m *mockAdminService) Authorize(ctx context.Context, key string) error {
	return m.authorizeFn(ctx, key)
}

func (m *mockAdminService) ExportCSV(ctx context.Context, w io.Writer) error {
	return m.exportFn(ctx, w)
}

func (m *mockAdminService) PurgeUser(ctx context.Context, identifier string) (models.PurgeResult, error) {
	return m.purgeFn(ctx, identifier)
}

// adminKey is the only secret accepted by newAdminMock.
const adminKey = "letmein"

func newAdminMock() *mockAdminService {
	return &mockAdminService{
		authorizeFn: func(_ context.Context, key string) error {
			if key != adminKey {
				return service.ErrUnauthorized
			}
			return nil
		},
	}
}

type mockPredictionService struct {
	loaded         bool
	predictFn      func(ctx context.Context, req models.PredictRequest) (models.Prediction, error)
	predictFusedFn func(ctx context.Context, req models.FusedRequest) (models.FusedPrediction, error)
}

func (m *mockPredictionService) ModelLoaded() bool {
	return m.loaded
}

func (m *mockPredictionService) Predict(ctx context.Context, req models.PredictRequest) (models.Prediction, error) {
	return m.predictFn(ctx, req)
}

func (m *mockPredictionService) PredictFused(ctx context.Context, req models.FusedRequest) (models.FusedPrediction, error) {
	return m.predictFusedFn(ctx, req)
}

type mockChatService struct {
	llmEnabled bool
	chatFn     func(ctx context.Context, req models.ChatRequest) models.ChatReply
	llmChatFn  func(ctx context.Context, req models.ChatRequest) models.ChatReply
}

func (m *mockChatService) LLMEnabled() bool {
	return m.llmEnabled
}

func (m *mockChatService) Chat(ctx context.Context, req models.ChatRequest) models.ChatReply {
	return m.chatFn(ctx, req)
}

func (m *mockChatService) LLMChat(ctx context.Context, req models.ChatRequest) models.ChatReply {
	return m.llmChatFn(ctx, req)
}

type mockAppInfoService struct {
	version string
	health  models.HealthResponse
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(_ context.Context) models.HealthResponse {
	return m.health
}

// newTestHandler builds a Handler over svcs. Services left nil are filled
// with mocks that panic when called.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.ConsentService == nil {
		svcs.ConsentService = &mockConsentService{}
	}
	if svcs.AssessmentService == nil {
		svcs.AssessmentService = &mockAssessmentService{}
	}
	if svcs.AdminService == nil {
		svcs.AdminService = newAdminMock()
	}
	if svcs.PredictionService == nil {
		svcs.PredictionService = &mockPredictionService{}
	}
	if svcs.ChatService == nil {
		svcs.ChatService = &mockChatService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return &Handler{
		services: svcs,
		signKey:  adminKey,
		logger:   logger.Nop(),
	}
}

func stubToken(signed, pseudonym string) models.Token {
	return models.Token{SignedString: signed, PseudonymousID: pseudonym}
}
