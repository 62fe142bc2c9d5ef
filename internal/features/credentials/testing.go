package credentials

import (
	"deskstore/internal/features/principals"

	"github.com/google/uuid"
)

// IssueTestKey issues a credential for the given owner and returns it with
// the raw secret populated.
func IssueTestKey(ownerID uuid.UUID) *Credential {
	credential, err := GetCredentialService().IssueKey(ownerID)
	if err != nil {
		panic("Failed to issue test key: " + err.Error())
	}

	return credential
}

// CreateAuthorizedTestPrincipal registers an activated principal and issues
// a key for it, returning both.
func CreateAuthorizedTestPrincipal() (*principals.Principal, *Credential) {
	principal, _ := principals.CreateTestPrincipal(true)
	return principal, IssueTestKey(principal.ID)
}
