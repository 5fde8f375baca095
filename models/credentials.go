// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials authenticate a connection against one instance.
type Credentials struct {
	APIKey   string `json:"api_key"`
	Instance string `json:"instance"`
}

// SessionRequest carries the optional IANA timezone of a new session.
type SessionRequest struct {
	Timezone string `json:"timezone,omitempty"`
}

// Subscription is one (target, context) registration request.
type Subscription struct {
	Target  Target
	Context SubscriptionContext
}
