package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

// ===============================
// Domain Actions
// ===============================

func SetStatusByShop(ap *models.Appointment, target Status) error {
	if err := CanSetByShop(Status(ap.Status), target); err != nil {
		return err
	}
	ap.Status = string(target)
	return nil
}

func CancelByUser(ap *models.Appointment) error {
	if err := CanCancelByUser(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCanceled)
	return nil
}
