// Package translation provides English to French, Spanish and German
// translation through pluggable providers (Google web endpoint, OpenAI,
// Gemini). It includes TTL caching to reduce provider calls and a circuit
// breaker wrapper so a failing upstream degrades to fast per-item errors.
package translation
