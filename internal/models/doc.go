// Package models provides functionality for listing available OpenAI
// models. It helps users discover which chat models are usable for
// translation with their API key.
package models
