// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAPIKey       = errors.New("api key is required")
	ErrEmptyInstance     = errors.New("instance name is required")
	ErrInvalidTimezone   = errors.New("unsupported timezone")
	ErrInvalidContext    = errors.New("invalid subscription context")
	ErrEmptyProjectID    = errors.New("project id is required")
	ErrEmptyCollection   = errors.New("collection id or key is required")
	ErrAmbiguousRef      = errors.New("exactly one identifier must be set")
	ErrEmptyDataRef      = errors.New("data object id or key is required")
	ErrEmptyDataIDs      = errors.New("data ids cannot contain empty values")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyUserRef      = errors.New("user id or name is required")
	ErrEmptyAdminRef     = errors.New("administrator id or e-mail is required")
	ErrEmptyAPIClientID  = errors.New("api client id is required")
	ErrEmptyDescription  = errors.New("description is required")
	ErrEmptyRoleID       = errors.New("role id is required")
	ErrInvalidPermission = errors.New("invalid permission")
	ErrInvalidKeyType    = errors.New("invalid api key type")
	ErrInvalidState      = errors.New("invalid data object state")
	ErrInvalidStatus     = errors.New("invalid collection status")
	ErrInvalidLimit      = errors.New("limit cannot be negative")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
)
