package apierrors

const (
	MsgFailListActions      = "errorListActions"
	MsgInvalidActionID      = "invalidActionID"
	MsgInvalidActionPayload = "invalidActionPayload"
	MsgInvalidActionQuery   = "invalidActionQuery"
	MsgActionNotFound       = "actionNotFound"
	MsgFailCreateAction     = "failCreateAction"
	MsgFailUpdateAction     = "failUpdateAction"
	MsgFailDeleteAction     = "failDeleteAction"
	MsgFailDuplicateAction  = "failDuplicateAction"
	MsgInvalidActionDates   = "invalidActionDates"
	MsgFailUpdateSprint     = "failUpdateSprint"
	MsgFailListReference    = "failListReference"
)
