// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the payout gateway.
//
// Configuration is assembled from these sources, in decreasing precedence:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Connectors can only be declared in the JSON file. The entry point is
// [GetStructuredConfig].
package config
