package booking

import "medicare/utils"

var (
	ErrSlotUnavailable     = utils.NewError(utils.KindConflict, "slot unavailable")
	ErrDateRequired        = utils.NewError(utils.KindBadRequest, "date is required")
	ErrInvalidDate         = utils.NewError(utils.KindBadRequest, "invalid appointment date")
	ErrNoMatchingSlot      = utils.NewError(utils.KindNotFound, "no matching date with remaining slots")
	ErrSlotNotModified     = utils.NewError(utils.KindConflict, "slot was not modified")
	ErrUserBlocked         = utils.NewError(utils.KindForbidden, "user is blocked")
	ErrAppointmentNotFound = utils.NewError(utils.KindNotFound, "appointment not found")
	ErrReportLinkRequired  = utils.NewError(utils.KindBadRequest, "reportLink is required")
)

// ReportAlreadyGone is the note returned when a delivery matches nothing.
const ReportAlreadyGone = "appointment already gone; nothing updated"
