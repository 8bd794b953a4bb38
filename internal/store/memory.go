package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-medcare/models"
)

// MemoryStorage keeps every repository in process memory. It is used when no
// DSN is configured and in tests. Safe for concurrent use.
type MemoryStorage struct {
	mu sync.RWMutex

	users       map[string]models.User
	consents    []models.ConsentRecord
	assessments []models.Assessment

	nextUserID       int64
	nextConsentID    int64
	nextAssessmentID int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users: make(map[string]models.User),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.PseudonymousID]; exists {
		return models.User{}, ErrIdentityAlreadyExists
	}

	m.nextUserID++
	user.ID = m.nextUserID
	m.users[user.PseudonymousID] = user
	return user, nil
}

func (m *MemoryStorage) FindUserByPseudonym(_ context.Context, pseudonymousID string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[pseudonymousID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (m *MemoryStorage) SaveConsent(_ context.Context, record models.ConsentRecord) (models.ConsentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextConsentID++
	record.ID = m.nextConsentID
	m.consents = append(m.consents, record)
	return record, nil
}

func (m *MemoryStorage) SaveAssessment(_ context.Context, a models.Assessment) (models.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(a.Answers) == 0 {
		a.Answers = models.EmptyAnswers
	}
	a.Answers = slices.Clone(a.Answers)

	m.nextAssessmentID++
	a.ID = m.nextAssessmentID
	m.assessments = append(m.assessments, a)
	return a, nil
}

func (m *MemoryStorage) GetHistory(_ context.Context, pseudonymousID string) ([]models.Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Assessment, 0)
	for _, a := range m.assessments {
		if a.PseudonymousID == pseudonymousID {
			result = append(result, copyAssessment(a))
		}
	}
	slices.SortStableFunc(result, newestFirst)
	return result, nil
}

func (m *MemoryStorage) GetAll(_ context.Context) ([]models.Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Assessment, 0, len(m.assessments))
	for _, a := range m.assessments {
		result = append(result, copyAssessment(a))
	}
	slices.SortStableFunc(result, newestFirst)
	return result, nil
}

func (m *MemoryStorage) PurgeUserData(_ context.Context, pseudonymousID string) (models.PurgeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result models.PurgeResult

	before := len(m.assessments)
	m.assessments = slices.DeleteFunc(m.assessments, func(a models.Assessment) bool {
		return a.PseudonymousID == pseudonymousID
	})
	result.Assessments = int64(before - len(m.assessments))

	before = len(m.consents)
	m.consents = slices.DeleteFunc(m.consents, func(c models.ConsentRecord) bool {
		return c.PseudonymousID == pseudonymousID
	})
	result.Consents = int64(before - len(m.consents))

	return result, nil
}

// Consents returns a copy of the consent log of one user.
func (m *MemoryStorage) Consents(pseudonymousID string) []models.ConsentRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.ConsentRecord
	for _, c := range m.consents {
		if c.PseudonymousID == pseudonymousID {
			out = append(out, c)
		}
	}
	return out
}

// newestFirst orders by recorded_at DESC, id DESC like the SQL backends.
func newestFirst(a, b models.Assessment) int {
	if c := b.RecordedAt.Compare(a.RecordedAt); c != 0 {
		return c
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}

func copyAssessment(a models.Assessment) models.Assessment {
	a.Answers = slices.Clone(a.Answers)
	return a
}
