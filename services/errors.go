package services

import "errors"

// Sentinel errors shared by the services. Handlers translate these into
// HTTP statuses; anything not in this list is treated as a store failure.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrKudosNotFound = errors.New("kudos not found")
	ErrBadgeNotFound = errors.New("badge not found")

	// ErrAlreadyLiked — same user liking the same kudos twice.
	ErrAlreadyLiked = errors.New("user already liked this kudos")

	// ErrSelfKudos — fromUser == toUser on creation.
	ErrSelfKudos = errors.New("cannot give kudos to yourself")

	ErrMissingFields = errors.New("fromUser, toUser, badge and message are required")
	ErrUnknownBadge  = errors.New("badge is not one of the recognized badge types")
	ErrNameRequired  = errors.New("name is required")
)
