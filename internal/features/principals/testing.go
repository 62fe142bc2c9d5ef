package principals

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CreateTestPrincipal registers a principal with a unique username/email and
// returns it together with its raw registration token.
func CreateTestPrincipal(activated bool) (*Principal, string) {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]

	response, err := GetPrincipalService().Register(&RegisterRequestDTO{
		Username: "user_" + suffix,
		Email:    fmt.Sprintf("user_%s@example.com", suffix),
		FullName: "Test User " + suffix,
	})
	if err != nil {
		panic("Failed to create test principal: " + err.Error())
	}

	if !activated {
		if err := GetPrincipalService().SetActivation(response.ID, false); err != nil {
			panic("Failed to deactivate test principal: " + err.Error())
		}
	}

	principal, err := GetPrincipalService().GetByID(response.ID)
	if err != nil || principal == nil {
		panic("Failed to reload test principal")
	}

	return principal, response.RegistrationToken
}
