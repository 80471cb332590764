package apierrors

const (
	MsgInvalidCredentials    = "invalidCredentials"
	MsgSessionRequired       = "sessionRequired"
	MsgAdminRequired         = "adminRequired"
	MsgPasswordPolicy        = "passwordPolicy"
	MsgPasswordTooLong       = "passwordTooLong"
	MsgPasswordMismatch      = "passwordMismatch"
	MsgInvalidUserPayload    = "invalidUserPayload"
	MsgUserNotFound          = "userNotFound"
	MsgAdminImmutable        = "adminImmutable"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgInvalidStatus         = "invalidStatus"
	MsgChatNotFound          = "chatNotFound"
	MsgEmptyMessage          = "emptyMessage"
	MsgTranscribeDown        = "transcribeUnavailable"
	MsgFailCommit            = "failCommit"
)
