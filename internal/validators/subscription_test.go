// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/Syncano/syncano-dotnet-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestSubscriptionValidator_Dispatch
// ---------------------------------------------------------------------------

func TestSubscriptionValidator_Dispatch(t *testing.T) {
	v := NewSubscriptionValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("credentials pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Credentials{APIKey: "k", Instance: "i"}))
	})

	t.Run("collection ref value", func(t *testing.T) {
		ref := models.CollectionRef{ProjectID: "1", CollectionID: "2"}
		require.NoError(t, v.Validate(ctx, ref, FieldProjectID, FieldCollection))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.Credentials{}, "password")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestSubscriptionValidator_Credentials(t *testing.T) {
	v := NewSubscriptionValidator()

	tests := []struct {
		name  string
		creds models.Credentials
		want  error
	}{
		{name: "valid", creds: models.Credentials{APIKey: "key", Instance: "inst"}},
		{name: "empty key", creds: models.Credentials{Instance: "inst"}, want: ErrEmptyAPIKey},
		{name: "blank key", creds: models.Credentials{APIKey: "  ", Instance: "inst"}, want: ErrEmptyAPIKey},
		{name: "empty instance", creds: models.Credentials{APIKey: "key"}, want: ErrEmptyInstance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// SessionRequest
// ---------------------------------------------------------------------------

func TestSubscriptionValidator_Timezone(t *testing.T) {
	v := NewSubscriptionValidator()

	tests := []struct {
		tz    string
		valid bool
	}{
		{tz: "", valid: true},
		{tz: "UTC", valid: true},
		{tz: "Europe/Warsaw", valid: true},
		{tz: "America/Argentina/Buenos_Aires", valid: true},
		{tz: "Local", valid: false},
		{tz: "Mars/Olympus_Mons", valid: false},
		{tz: " UTC", valid: false},
		{tz: "../etc/passwd", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			err := v.Validate(context.Background(), models.SessionRequest{Timezone: tt.tz})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidTimezone)
		})
	}
}

// ---------------------------------------------------------------------------
// Subscription / Target
// ---------------------------------------------------------------------------

func TestSubscriptionValidator_Subscription(t *testing.T) {
	v := NewSubscriptionValidator()

	tests := []struct {
		name   string
		sub    models.Subscription
		fields []string
		want   error
	}{
		{
			name: "project with default context",
			sub:  models.Subscription{Target: models.ProjectTarget("1")},
		},
		{
			name: "collection by key in session",
			sub: models.Subscription{
				Target:  models.Target{ProjectID: "1", CollectionKey: "news"},
				Context: models.ContextSession,
			},
			fields: []string{FieldProjectID, FieldCollection, FieldContext},
		},
		{
			name: "missing project",
			sub:  models.Subscription{Target: models.Target{CollectionID: "2"}},
			want: ErrEmptyProjectID,
		},
		{
			name:   "collection required but missing",
			sub:    models.Subscription{Target: models.ProjectTarget("1")},
			fields: []string{FieldProjectID, FieldCollection},
			want:   ErrEmptyCollection,
		},
		{
			name: "both collection id and key",
			sub: models.Subscription{
				Target: models.Target{ProjectID: "1", CollectionID: "2", CollectionKey: "news"},
			},
			want: ErrAmbiguousRef,
		},
		{
			name: "unknown context",
			sub:  models.Subscription{Target: models.ProjectTarget("1"), Context: "forever"},
			want: ErrInvalidContext,
		},
		{
			name:   "unknown field",
			sub:    models.Subscription{Target: models.ProjectTarget("1")},
			fields: []string{"data"},
			want:   ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.sub, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
