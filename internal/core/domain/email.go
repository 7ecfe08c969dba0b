package domain

// EmailKind labels the transactional email templates the system sends.
type EmailKind string

const (
	EmailPasswordReset     EmailKind = "password_reset"
	EmailPasswordConfirmed EmailKind = "password_confirmed"
)

// Email is a transactional message handed to the dispatcher. Delivery is a
// side effect of the triggering request and may fail independently of it.
type Email struct {
	Kind     EmailKind
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}
