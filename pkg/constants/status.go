package constants

const (
	StatusOK      = "ok"
	StatusCreated = "created"
)

// Kök prefix; medya dosyaları buradan statik servis edilir.
const UploadsURLPrefix = "/uploads"

const SessionCookieName = "session_token"
