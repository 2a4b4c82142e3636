package leave

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	leaveerrors "github.com/ninoyerbas/JHRIS/internal/leave/errors"
)

// mapBalanceCreateError collapses the unique violation and the FK violation
// into the one client-facing error: the caller either duplicated an existing
// allocation or referenced an employee/type that does not exist.
func mapBalanceCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503":
			return leaveerrors.ErrBalanceAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "violates foreign key constraint") {
		return leaveerrors.ErrBalanceAlreadyExists
	}

	return err
}

// mapRequestCreateError turns an FK violation on the new request into the
// generic creation failure. Referential integrity is not pre-checked.
func mapRequestCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return leaveerrors.ErrLeaveRequestCreateFailed
	}

	if strings.Contains(strings.ToLower(err.Error()), "violates foreign key constraint") {
		return leaveerrors.ErrLeaveRequestCreateFailed
	}

	return err
}
