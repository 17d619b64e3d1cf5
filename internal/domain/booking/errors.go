package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

var (
	ErrWrongStep            = httperr.ErrBusiness("wrong_step")
	ErrStepBlocked          = httperr.ErrBusiness("step_blocked")
	ErrServiceNotFound      = httperr.ErrBusiness("service_not_found")
	ErrProfessionalNotFound = httperr.ErrBusiness("professional_not_found")
	ErrDateOutOfView        = httperr.ErrBusiness("date_out_of_view")
	ErrDateInPast           = httperr.ErrBusiness("date_in_past")
	ErrInvalidDate          = httperr.ErrBusiness("invalid_date")
	ErrInvalidSlot          = httperr.ErrBusiness("invalid_slot")
	ErrIncomplete           = httperr.ErrBusiness("booking_incomplete")
	ErrFinished             = httperr.ErrBusiness("booking_finished")
)
