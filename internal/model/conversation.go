package model

// Role tags a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Category is the routing classification of a query.
type Category string

const (
	CategoryProductReview Category = "product_review"
	CategoryGeneric       Category = "generic"
)

// Valid reports whether the category is one of the two known values.
func (c Category) Valid() bool {
	return c == CategoryProductReview || c == CategoryGeneric
}

// Message is one role-tagged entry in the conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationState is the persisted per-session state.
//
// Field ownership per turn:
//   - Messages: user entry appended by the usecase before the traversal,
//     assistant entry appended by the compose node. Append-only.
//   - Category: written by the route node. Never unset once written.
//   - HandlerResult: cleared at the start of each turn, written by exactly
//     one handler node.
//   - FinalResponse: overwritten each turn by the compose node.
type ConversationState struct {
	Messages      []Message `json:"messages"`
	Category      Category  `json:"category,omitempty"`
	HandlerResult string    `json:"handler_result,omitempty"`
	FinalResponse string    `json:"final_response,omitempty"`
}

// NewConversationState returns the fresh state a brand-new session starts with.
func NewConversationState() *ConversationState {
	return &ConversationState{
		Messages: []Message{},
	}
}

// AppendMessage adds an entry to the conversation history.
func (s *ConversationState) AppendMessage(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// LastUserMessage returns the content of the most recent user entry,
// or "" when there is none.
func (s *ConversationState) LastUserMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content
		}
	}
	return ""
}

// BeginTurn resets the per-turn fields before a new traversal.
func (s *ConversationState) BeginTurn() {
	s.HandlerResult = ""
	s.FinalResponse = ""
}

// Clone returns a deep copy. Stores hand out copies so callers never share
// message slices across sessions or turns.
func (s *ConversationState) Clone() *ConversationState {
	cp := *s
	cp.Messages = make([]Message, len(s.Messages))
	copy(cp.Messages, s.Messages)
	return &cp
}
