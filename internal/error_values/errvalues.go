package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("invalid request")
)

var (
	ErrProgressNotFound   = errors.New("challenge progress doesn't exists")
	ErrMalformedProgress  = errors.New("stored challenge progress is malformed")
	ErrProblemNotFound    = errors.New("problem doesn't exists")
	ErrCatalogExhausted   = errors.New("problem catalog has not enough unused problems")
	ErrChallengeNotActive = errors.New("challenge is not active")
	ErrUnknownDifficulty  = errors.New("unknown difficulty")
	ErrResetForbidden     = errors.New("wrong reset secret")
	ErrGameProgressAbsent = errors.New("game progress doesn't exists")
)
