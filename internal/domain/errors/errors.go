package errors

import "errors"

// Erros de autenticação e conta
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrAuthFailure        = errors.New("error.auth_failure")
	ErrInvalidName        = errors.New("error.invalid_name")
	ErrInvalidEmail       = errors.New("error.invalid_email")
	ErrPasswordRequired   = errors.New("error.password_required")
	ErrInvalidPassword    = errors.New("error.invalid_password")
	ErrUnderage           = errors.New("error.underage")
	ErrEmailAlreadyExists = errors.New("error.email_in_use")
	ErrRegistrationFailed = errors.New("error.registration_failed")
	ErrLoginFailed        = errors.New("error.login_failed")
	ErrProfileUpdate      = errors.New("error.profile_update_failed")
	ErrImageUpdate        = errors.New("error.image_update_failed")
	ErrFileNotFound       = errors.New("error.file_not_found")
	ErrForbidden          = errors.New("error.forbidden")
	ErrInvalidRecovery    = errors.New("error.invalid_recovery_code")
)

// Erros de consulta
var (
	ErrUserNotFound  = errors.New("error.user_not_found")
	ErrNoUsersFound  = errors.New("error.no_users_found")
	ErrMissingFields = errors.New("error.missing_fields")
	ErrInvalidFields = errors.New("error.invalid_fields")
	ErrGeneric       = errors.New("error.generic")
)

// Erros de amizade
var (
	ErrFriendRequestExists = errors.New("error.friend_request_exists")
	ErrAlreadyFriends      = errors.New("error.already_friends")
	ErrAcceptFailed        = errors.New("error.accept_failed")
	ErrRejectFailed        = errors.New("error.reject_failed")
	ErrFriendshipNotFound  = errors.New("error.friendship_not_found")
	ErrUnfriendFailed      = errors.New("error.unfriend_failed")
)

// Erros de denúncia
var (
	ErrReportInvalidEmail = errors.New("error.report_invalid_email")
	ErrReasonRequired     = errors.New("error.reason_required")
	ErrReasonTooLong      = errors.New("error.reason_too_long")
	ErrReportFailed       = errors.New("error.report_failed")
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Code    error
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is permite comparar DomainError com o sentinel do seu código
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Code, target)
}
