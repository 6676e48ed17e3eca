package counter

import (
	"fmt"
	"strings"
)

const organizationCodeLength = 8

// TransactionID formats "<prefix>-<stamp>-<org code>-<seq>". Sequences restart at 1
// for every organization, so the organization code is what keeps ids distinct.
func TransactionID(prefix, stamp, organizationID string, seq int64) string {
	return fmt.Sprintf("%s-%s-%s-%08d", prefix, stamp, OrganizationCode(organizationID), seq)
}

// OrganizationCode is the upper-cased leading hex of the organization id.
func OrganizationCode(organizationID string) string {
	code := strings.ToUpper(strings.ReplaceAll(organizationID, "-", ""))
	if len(code) > organizationCodeLength {
		code = code[:organizationCodeLength]
	}
	return code
}
