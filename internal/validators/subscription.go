// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"
	// Embedded zone database so timezone checks do not depend on the host.
	_ "time/tzdata"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// Field name constants used to scope validation of login, session and
// subscription arguments.
const (
	// FieldAPIKey targets Credentials.APIKey.
	FieldAPIKey = "api_key"

	// FieldInstance targets Credentials.Instance.
	FieldInstance = "instance"

	// FieldTimezone targets SessionRequest.Timezone. An empty timezone is
	// accepted; the backend then applies the instance default.
	FieldTimezone = "timezone"

	// FieldProjectID targets the project identifier of a target or reference.
	FieldProjectID = "project_id"

	// FieldCollection requires exactly one of CollectionID and CollectionKey.
	FieldCollection = "collection"

	// FieldOptionalCollection allows neither but rejects both of
	// CollectionID and CollectionKey.
	FieldOptionalCollection = "optional_collection"

	// FieldContext targets the subscription context. The zero value means
	// the connection context and is accepted.
	FieldContext = "context"
)

// SubscriptionValidator implements the Validator interface for the arguments
// of Login, StartSession and the Subscribe*/Unsubscribe* calls.
type SubscriptionValidator struct {
}

// NewSubscriptionValidator constructs a new SubscriptionValidator and
// returns it as the Validator interface.
func NewSubscriptionValidator() Validator {
	return &SubscriptionValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types, value or
// pointer: models.Credentials, models.SessionRequest, models.Subscription,
// models.Target and models.CollectionRef.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *SubscriptionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SessionRequest:
		return v.validateSessionRequest(value, fields...)
	case *models.SessionRequest:
		return v.validateSessionRequest(*value, fields...)

	case models.Subscription:
		return v.validateSubscription(value, fields...)
	case *models.Subscription:
		return v.validateSubscription(*value, fields...)

	case models.Target:
		return v.validateTarget(value, fields...)
	case *models.Target:
		return v.validateTarget(*value, fields...)

	case models.CollectionRef:
		return v.validateTarget(models.CollectionTarget(value), fields...)
	case *models.CollectionRef:
		return v.validateTarget(models.CollectionTarget(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

// Default validated fields: APIKey, Instance. Whitespace-only values count
// as empty.
func (v *SubscriptionValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIKey, FieldInstance}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIKey:
			if strings.TrimSpace(c.APIKey) == "" {
				return ErrEmptyAPIKey
			}
		case FieldInstance:
			if strings.TrimSpace(c.Instance) == "" {
				return ErrEmptyInstance
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SubscriptionValidator) validateSessionRequest(r models.SessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTimezone}
	}

	for _, f := range fields {
		switch f {
		case FieldTimezone:
			if err := validateTimezone(r.Timezone); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateTimezone accepts an empty name or an IANA zone known to the
// embedded database. "Local" is host-dependent and never reaches the wire.
func validateTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	if tz != strings.TrimSpace(tz) || tz == "Local" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}

// Default validated fields: ProjectID, OptionalCollection, Context.
func (v *SubscriptionValidator) validateSubscription(s models.Subscription, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldOptionalCollection, FieldContext}
	}

	for _, f := range fields {
		switch f {
		case FieldContext:
			if !s.Context.OrDefault().Valid() {
				return ErrInvalidContext
			}
		default:
			if err := v.validateTarget(s.Target, f); err != nil {
				return err
			}
		}
	}

	return nil
}

// Default validated fields: ProjectID, OptionalCollection.
func (v *SubscriptionValidator) validateTarget(t models.Target, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectID, FieldOptionalCollection}
	}

	for _, f := range fields {
		switch f {
		case FieldProjectID:
			if strings.TrimSpace(t.ProjectID) == "" {
				return ErrEmptyProjectID
			}
		case FieldCollection:
			if err := exactlyOne(t.CollectionID, t.CollectionKey, ErrEmptyCollection); err != nil {
				return err
			}
		case FieldOptionalCollection:
			if t.CollectionID != "" && t.CollectionKey != "" {
				return ErrAmbiguousRef
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// exactlyOne returns errEmpty when both a and b are blank and
// ErrAmbiguousRef when both are set.
func exactlyOne(a, b string, errEmpty error) error {
	hasA, hasB := strings.TrimSpace(a) != "", strings.TrimSpace(b) != ""
	switch {
	case hasA && hasB:
		return ErrAmbiguousRef
	case !hasA && !hasB:
		return errEmpty
	}
	return nil
}
