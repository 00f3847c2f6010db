package mailbridge

import "fmt"

// BodyType identifies how a message body should be interpreted.
type BodyType string

const (
	// BodyTypeHTML marks the body content as HTML.
	BodyTypeHTML BodyType = "HTML"

	// BodyTypeText marks the body content as plain text.
	BodyTypeText BodyType = "Text"
)

// EmailAddress is a mail address with an optional display name.
type EmailAddress struct {
	Address string
	Name    string
}

// String formats the address in RFC 5322 form.
// Returns "Name <address>" if a name is set, otherwise just the address.
func (a EmailAddress) String() string {
	if a.Name == "" {
		return a.Address
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Address)
}

// Recipient wraps an email address for a message recipient list.
type Recipient struct {
	EmailAddress EmailAddress
}

// ItemBody is the content of a message together with its type.
type ItemBody struct {
	ContentType BodyType
	Content     string
}

// Message is a fully-prepared outbound mail message. Each transport maps it
// to its own wire or SDK representation. Recipient addresses are passed
// through without validation.
type Message struct {
	Subject       string
	Body          ItemBody
	From          *Recipient // overrides the transport's default sender if set
	ReplyTo       []Recipient
	ToRecipients  []Recipient
	CcRecipients  []Recipient
	BccRecipients []Recipient
}

// NewMessage builds the canonical single-recipient message with an HTML body.
func NewMessage(to, subject, htmlBody string) *Message {
	return &Message{
		Subject: subject,
		Body: ItemBody{
			ContentType: BodyTypeHTML,
			Content:     htmlBody,
		},
		ToRecipients: []Recipient{
			{EmailAddress: EmailAddress{Address: to}},
		},
	}
}
