package validators

// Field name constants used to scope UserValidator to a subset of checks.
const (
	// FieldEmail targets the account email of sign-up and sign-in requests.
	FieldEmail = "email"

	// FieldName targets the display name.
	FieldName = "name"

	// FieldPassword targets a new account password.
	FieldPassword = "password"

	// FieldCurrentPassword targets a password that is only compared against
	// the stored hash, so only presence is checked.
	FieldCurrentPassword = "current_password"

	// FieldOldPassword targets the old password of a change-password request.
	FieldOldPassword = "oldPassword"

	// FieldNewPassword targets the new password of a change-password request.
	FieldNewPassword = "newPassword"

	// FieldItemID targets the favorite item identifier.
	FieldItemID = "itemId"
)

// Limits applied by UserValidator.
const (
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
	MaxNameLength     = 100
	MaxItemIDLength   = 256
)
