package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrMissingIdentity     = errors.New("identifier is required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidLabel        = errors.New("label must be one of Low, Medium, High")
	ErrUnauthorized        = errors.New("unauthorized")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
