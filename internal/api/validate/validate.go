package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserID must be lowercase letters, digits, underscore, 1-20 chars
var userIdRx = regexp.MustCompile(`^[a-z0-9_]{1,20}$`)

// Image IDs are opaque tokens minted by the upload endpoint.
var imageIdRx = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

// CreateUser validates input for creating a new user. UserID is optional;
// when empty the service derives one from the email.
func CreateUser(userId, email string, displayName *string) error {
	if userId != "" && !userIdRx.MatchString(userId) {
		return fmt.Errorf("userId must match %s", userIdRx.String())
	}
	if err := Email(email); err != nil {
		return err
	}
	if err := MaxLen("displayName", displayName, 100); err != nil {
		return err
	}
	return nil
}

// AnalyzeWaste validates input for submitting a scanned item.
func AnalyzeWaste(imageId string, description *string) error {
	if imageId == "" {
		return fmt.Errorf("imageId is required")
	}
	if !imageIdRx.MatchString(imageId) {
		return fmt.Errorf("imageId must match %s", imageIdRx.String())
	}
	if err := MaxLen("description", description, 500); err != nil {
		return err
	}
	return nil
}
