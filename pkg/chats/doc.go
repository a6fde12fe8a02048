// Package chats groups the conversation model shared by the host and its
// LLM providers.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/togetherchat/pkg/chats/role] — sender roles
//   - [github.com/germanamz/togetherchat/pkg/chats/content] — message content parts
//   - [github.com/germanamz/togetherchat/pkg/chats/message] — the Message value type
//   - [github.com/germanamz/togetherchat/pkg/chats/chat] — the Chat conversation container
package chats
