package apierrors

const (
	MsgInvalidPayload        = "invalidPayload"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgInvalidCommentPayload = "invalidCommentPayload"
	MsgInvalidProjectID      = "invalidProjectID"
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidMemberID       = "invalidMemberID"

	MsgUnauthorized       = "unauthorized"
	MsgForbidden          = "forbidden"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmailTaken         = "emailTaken"

	MsgUserNotFound    = "userNotFound"
	MsgProjectNotFound = "projectNotFound"
	MsgTaskNotFound    = "taskNotFound"

	MsgFailRegister      = "failRegister"
	MsgFailLogin         = "failLogin"
	MsgFailProfile       = "failProfile"
	MsgFailCreateProject = "failCreateProject"
	MsgFailListProject   = "errorListProject"
	MsgFailGetProject    = "failGetProject"
	MsgFailUpdateProject = "failUpdateProject"
	MsgFailDeleteProject = "failDeleteProject"
	MsgFailUpdateTeam    = "failUpdateTeam"
	MsgFailCreateTask    = "failCreateTask"
	MsgFailListTask      = "errorListTask"
	MsgFailGetTask       = "failGetTask"
	MsgFailUpdateTask    = "failUpdateTask"
	MsgFailDeleteTask    = "failDeleteTask"
	MsgFailAddComment    = "failAddComment"
	MsgFailTaskStats     = "failTaskStats"

	MsgProjectDeleted = "projectDeleted"
	MsgTaskDeleted    = "taskDeleted"
)
