package postgresql

import (
	"errors"
	"fmt"

	"github.com/corpdesk/company-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-constraint
// violation, so repositories can map it to a domain conflict error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// storeError wraps unexpected driver failures with
// database.ErrUnavailable so the handler layer reports them without
// leaking driver text. Row-miss and constraint errors pass through for
// domain translation at the call site.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", op, database.ErrUnavailable, err)
}
