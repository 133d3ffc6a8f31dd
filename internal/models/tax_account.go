package models

import "time"

// TaxAccount owns one profile, or two for a joint (spousal) account.
// AccountNumber is assigned once at creation.
type TaxAccount struct {
	ID               string    `json:"id"`
	AccountNumber    string    `json:"account_number"`
	PrimaryProfileID string    `json:"primary_profile_id"`
	SpouseProfileID  *string   `json:"spouse_profile_id,omitempty"`
	IsSpousal        bool      `json:"is_spousal"`
	CreatedAt        time.Time `json:"created_at"`
}
