// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the client: the preconfigured JSON HTTP client and
// identifier generation.
package utils
