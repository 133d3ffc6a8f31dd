// Package accounts assigns account numbers to joint (spousal) tax accounts.
package accounts

import (
	"fmt"
	"strings"
)

const (
	accountNumberPrefix = "INV-"
	namePartLength      = 3
	namePadding         = "X"
)

// SpousalAccountNumber formats the account number of a joint account from
// both last names and the number of spousal accounts that existed when it
// was created, e.g. Smith, Jo and 7 give INV-SMIJOO007.
//
// The function is pure. Uniqueness depends on the caller reading the count
// and inserting the account without another provisioning in between.
func SpousalAccountNumber(primaryLastName, spouseLastName string, sequence int) string {
	return fmt.Sprintf("%s%s%s%03d",
		accountNumberPrefix,
		namePart(primaryLastName),
		namePart(spouseLastName),
		sequence,
	)
}

// namePart takes the first three characters of a name in upper case,
// padded with X when the name is shorter.
func namePart(name string) string {
	runes := []rune(strings.ToUpper(strings.TrimSpace(name)))
	if len(runes) > namePartLength {
		runes = runes[:namePartLength]
	}
	return string(runes) + strings.Repeat(namePadding, namePartLength-len(runes))
}
