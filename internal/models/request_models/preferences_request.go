package request_models

// PreferencesRequest replaces the stored preferences wholesale; there is no
// partial merge. Bool fields are pointers so that explicit false passes
// the required check.
type PreferencesRequest struct {
	NotificationsEnabled *bool  `json:"notificationsEnabled" binding:"required"`
	DarkMode             *bool  `json:"darkMode" binding:"required"`
	Language             string `json:"language" binding:"required"`
}
