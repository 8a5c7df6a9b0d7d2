package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/common"
)

// minPasswordLen matches the server-side policy; checking it here blocks the
// submission before any network traffic.
const minPasswordLen = 6

func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters long", common.ErrValidation, minPasswordLen)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return nil
}

func validateRequired(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrValidation, name)
	}
	return nil
}
