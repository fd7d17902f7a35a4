package services

// MailDispatcher is the outbound email collaborator. A dispatch either
// succeeds or fails once; there are no retries.
type MailDispatcher interface {
	SendOTP(to, code string) error
	SendPasswordReset(to, resetLink string) error
}
