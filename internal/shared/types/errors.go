package types

import "errors"

var (
	ErrSchemaViolation   = errors.New("dataset does not match the order line schema")
	ErrEmptyDataset      = errors.New("dataset has no order lines")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrUnsupportedSource = errors.New("unsupported dataset source")
	ErrUnknownView       = errors.New("unknown derived view")
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)
