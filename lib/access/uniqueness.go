package access

import (
	"strings"
	"workvera-backend/lib/utils/app-error"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UniqueKind string

const (
	UniqueApplication UniqueKind = "application"
	UniqueSkillResult UniqueKind = "skill_result"
)

const uniqueViolationCode = "23505"

var conflictMessages = map[UniqueKind]string{
	UniqueApplication: "you have already applied for this job",
	UniqueSkillResult: "you have already submitted results for this skill test",
}

// ExistsFunc reports whether a record already exists for the (actor, target) pair.
type ExistsFunc func(actorID, targetID string) (bool, error)

// UniquenessEnforcer runs the application level pre-check. It only produces a clean error
// message; the unique indexes in the store stay the correctness guarantee.
type UniquenessEnforcer struct {
	checks map[UniqueKind]ExistsFunc
}

func NewUniquenessEnforcer() *UniquenessEnforcer {
	return &UniquenessEnforcer{checks: map[UniqueKind]ExistsFunc{}}
}

func (e *UniquenessEnforcer) Register(kind UniqueKind, exists ExistsFunc) *UniquenessEnforcer {
	e.checks[kind] = exists
	return e
}

func (e *UniquenessEnforcer) CheckUnique(actor Actor, targetID string, kind UniqueKind) error {
	exists, ok := e.checks[kind]
	if !ok {
		return errors.Errorf("uniqueness check is not registered for %q", kind)
	}
	found, err := exists(actor.ID, targetID)
	if err != nil {
		return errors.Wrapf(err, "uniqueness check for %s", kind)
	}
	if found {
		return ConflictFor(kind)
	}
	return nil
}

func ConflictFor(kind UniqueKind) error {
	if msg, ok := conflictMessages[kind]; ok {
		return apperror.Conflict(msg)
	}
	return apperror.Conflict("record already exists")
}

// TranslateUniqueViolation maps a duplicate key error raised at commit to the same conflict the
// pre-check returns. Other errors pass through unchanged.
func TranslateUniqueViolation(err error, kind UniqueKind) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return apperror.Wrap(apperror.KindConflict, err, conflictMessages[kind])
	}
	return err
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return strings.Contains(err.Error(), "(SQLSTATE 23505)")
}
