// Package providers defines the interface and types for LLM completion providers.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/togetherchat/pkg/providers/provider] — Completer interface, embeddable base client with HTTP helpers and auth
//   - [github.com/germanamz/togetherchat/pkg/providers/model] — model attributes and the resolved registry
//   - [github.com/germanamz/togetherchat/pkg/providers/preset] — declarative setting descriptors for customization schemas
//   - [github.com/germanamz/togetherchat/pkg/providers/descriptor] — provider descriptor contract and kind registry
//   - [github.com/germanamz/togetherchat/pkg/providers/openaichat] — generic OpenAI-compatible chat completions client
//   - [github.com/germanamz/togetherchat/pkg/providers/together] — Together AI provider plugin
//
// This package contains no provider-specific code — concrete adapters live in
// their own sub-packages.
package providers
