package bot

// Message is one line of text a user sent in a conversation.
type Message struct {
	ChatID       int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string // Client language tag, e.g. "pt-BR".
	Text         string
}

// Document is a file attached to a reply.
type Document struct {
	Name string
	Data []byte
}

// Reply is the single answer to a Message.
type Reply struct {
	Text     string
	Document *Document // Optional.
}

func text(s string) Reply { return Reply{Text: s} }
