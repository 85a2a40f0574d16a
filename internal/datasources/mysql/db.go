package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const driverParamStr string = "?parseTime=true"

const (
	errCodeDuplicateEntry  = 1062
	errCodeLockWaitTimeout = 1205
	errCodeDeadlock        = 1213
)

func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

func isMySQLError(err error, codes ...uint16) bool {
	var mysqlErr *mysqldriver.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	for _, code := range codes {
		if mysqlErr.Number == code {
			return true
		}
	}
	return false
}

func isDuplicateEntry(err error) bool {
	return isMySQLError(err, errCodeDuplicateEntry)
}

// isRetryableTxError reports whether the transaction was rolled back by the
// server because of lock contention and can be run again from the start.
func isRetryableTxError(err error) bool {
	return isMySQLError(err, errCodeDeadlock, errCodeLockWaitTimeout)
}
