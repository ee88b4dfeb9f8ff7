package permission

import "errors"

var (
	ErrBuildQuery = errors.New("permission.repository: failed to build query")
	ErrExecQuery  = errors.New("permission.repository: failed to execute query")
	ErrScanRow    = errors.New("permission.repository: failed to scan row")
)
