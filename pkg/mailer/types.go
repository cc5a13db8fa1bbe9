package mailer

import "net/mail"

// Identity is an email sender or recipient. Addresses are not validated.
type Identity struct {
	Email string `json:"email" mapstructure:"email"`
	Name  string `json:"name" mapstructure:"name"`
}

// Address formats the identity into RFC 5322 address format.
// Returns the bare email when no name is set. Otherwise the name is quoted,
// or RFC 2047 encoded when it is not ASCII.
func (i Identity) Address() string {
	if i.Name == "" {
		return i.Email
	}
	return (&mail.Address{Name: i.Name, Address: i.Email}).String()
}

// Addresses formats a list of identities.
func Addresses(ids []Identity) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.Address()
	}
	return result
}

// Message is a fully rendered email ready for delivery.
type Message struct {
	From    Identity
	Subject string
	HTML    string
	To      []Identity // May be empty
}

// Result describes the outcome of a dispatch.
type Result struct {
	Provider string // Provider name, e.g. "resend"; empty for debug output
	ID       string // Provider message ID, when the provider returns one
	Path     string // Debug file path (debug output only)
	Note     string // Human-readable note
	Debug    bool   // True when the email was written locally instead of sent
}

func (r *Result) String() string {
	if r == nil {
		return "<nil>"
	}
	if r.Debug {
		return r.Note
	}
	if r.ID == "" {
		return r.Provider
	}
	return r.Provider + ":" + r.ID
}
