package service

import "errors"

var (
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrThreatNotFound      = errors.New("threat not found")
	ErrInvalidThreatStatus = errors.New("invalid threat status")
	ErrForecastUnavailable = errors.New("forecast unavailable")
)
