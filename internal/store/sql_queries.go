package store

import (
	"github.com/MKhiriev/go-medcare/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns       = []string{"id", "pseudonymous_id", "display_name", "email", "password_hash", "created_at"}
	assessmentColumns = []string{"id", "pseudonymous_id", "score", "label", "answers", "recorded_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("pseudonymous_id", "display_name", "email", "password_hash", "created_at").
		Values(user.PseudonymousID, user.DisplayName, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByPseudonymQuery(b sq.StatementBuilderType, pseudonymousID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"pseudonymous_id": pseudonymousID}).
		Limit(1).
		ToSql()
}

func buildSaveConsentQuery(b sq.StatementBuilderType, record models.ConsentRecord) (string, []any, error) {
	return b.Insert(record.TableName()).
		Columns("pseudonymous_id", "consent", "recorded_at").
		Values(record.PseudonymousID, record.Consent, record.RecordedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSaveAssessmentQuery(b sq.StatementBuilderType, a models.Assessment) (string, []any, error) {
	return b.Insert(a.TableName()).
		Columns("pseudonymous_id", "score", "label", "answers", "recorded_at").
		Values(a.PseudonymousID, a.Score, string(a.Label), string(a.Answers), a.RecordedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildHistoryQuery(b sq.StatementBuilderType, pseudonymousID string) (string, []any, error) {
	return b.Select(assessmentColumns...).
		From(models.Assessment{}.TableName()).
		Where(sq.Eq{"pseudonymous_id": pseudonymousID}).
		OrderBy("recorded_at DESC", "id DESC").
		ToSql()
}

func buildAllAssessmentsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(assessmentColumns...).
		From(models.Assessment{}.TableName()).
		OrderBy("recorded_at DESC", "id DESC").
		ToSql()
}

func buildDeleteByPseudonymQuery(b sq.StatementBuilderType, table, pseudonymousID string) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"pseudonymous_id": pseudonymousID}).
		ToSql()
}
