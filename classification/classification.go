package classification

import "github.com/dshills/veil/policy"

// Classification identifies the semantic kind of a sensitive value. It is
// only a key into a [Registry]; the associated policy decides how values of
// that kind are transformed.
type Classification string

// Built-in classifications.
const (
	Secret            Classification = "secret"
	Token             Classification = "token"
	Email             Classification = "email"
	CreditCard        Classification = "credit_card"
	PII               Classification = "pii"
	PhoneNumber       Classification = "phone_number"
	NationalID        Classification = "national_id"
	AccountID         Classification = "account_id"
	SessionID         Classification = "session_id"
	IPAddress         Classification = "ip_address"
	DateOfBirth       Classification = "date_of_birth"
	BlockchainAddress Classification = "blockchain_address"
)

// builtins returns the default policy table. Secrets and dates of birth are
// fully replaced; identifier-like kinds keep a short visible suffix.
func builtins() map[Classification]policy.Text {
	return map[Classification]policy.Text{
		Secret:            policy.Full(),
		Token:             policy.KeepLast(4),
		Email:             policy.KeepFirst(2),
		CreditCard:        policy.KeepLast(4),
		PII:               policy.KeepLast(4),
		PhoneNumber:       policy.KeepLast(2),
		NationalID:        policy.KeepLast(4),
		AccountID:         policy.KeepLast(4),
		SessionID:         policy.KeepLast(4),
		IPAddress:         policy.KeepLast(4),
		DateOfBirth:       policy.Full(),
		BlockchainAddress: policy.KeepLast(6),
	}
}
