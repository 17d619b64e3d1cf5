package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type Step string

const (
	StepSelectingService      Step = "selecting_service"
	StepSelectingProfessional Step = "selecting_professional"
	StepSelectingDateTime     Step = "selecting_date_time"
	StepSubmitting            Step = "submitting"
	StepSuccess               Step = "success"
	StepAborted               Step = "aborted"
)

const (
	// AnyProfessional é a escolha "qualquer profissional disponível".
	AnyProfessional     = "any"
	AnyProfessionalName = "Próximo Livre"

	isoDate    = "2006-01-02"
	localeDate = "02/01/2006" // pt-BR
)

type ProfessionalChoice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p ProfessionalChoice) IsAny() bool { return p.ID == AnyProfessional }

// Wizard guarda a seleção transitória do fluxo de reserva.
// Todos os campos são exportados para poder ser serializado como rascunho.
type Wizard struct {
	ID           uuid.UUID           `json:"id"`
	BarbershopID uuid.UUID           `json:"barbershop_id"`
	Step         Step                `json:"step"`
	Service      *models.Service     `json:"service"`
	Professional *ProfessionalChoice `json:"professional"`
	// Datas de calendário (YYYY-MM-DD), lidas no fuso do relógio a cada uso.
	ViewMonth string `json:"view_month"`
	Date      string `json:"date,omitempty"`
	Time         string              `json:"time"`

	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
}

func New(shopID uuid.UUID, today time.Time) *Wizard {
	return &Wizard{
		ID:           uuid.New(),
		BarbershopID: shopID,
		Step:         StepSelectingService,
		ViewMonth:    startOfMonth(today).Format(isoDate),
	}
}

// ======================================================
// STEP 1: SERVIÇO
// ======================================================

func (w *Wizard) SelectService(shop *models.Barbershop, serviceID string) error {
	if w.Step != StepSelectingService {
		return ErrWrongStep
	}
	s, ok := shop.FindService(serviceID)
	if !ok {
		return ErrServiceNotFound
	}
	svc := *s
	w.Service = &svc
	return nil
}

// ======================================================
// STEP 2: PROFISSIONAL
// ======================================================

func (w *Wizard) SelectProfessional(shop *models.Barbershop, professionalID string) error {
	if w.Step != StepSelectingProfessional {
		return ErrWrongStep
	}
	if professionalID == AnyProfessional {
		w.Professional = &ProfessionalChoice{ID: AnyProfessional, Name: AnyProfessionalName}
		return nil
	}
	p, ok := shop.FindProfessional(professionalID)
	if !ok {
		return ErrProfessionalNotFound
	}
	w.Professional = &ProfessionalChoice{ID: p.ID, Name: p.Name}
	return nil
}

// ======================================================
// STEP 3: DATA / HORA
// ======================================================

// ShowMonth desloca o mês exibido; meses anteriores ao atual não são exibidos.
func (w *Wizard) ShowMonth(offset int, today time.Time) error {
	if w.Step != StepSelectingDateTime {
		return ErrWrongStep
	}
	view, err := w.viewMonth(today.Location())
	if err != nil {
		return err
	}
	next := view.AddDate(0, offset, 0)
	if next.Before(startOfMonth(today)) {
		next = startOfMonth(today)
	}
	w.ViewMonth = next.Format(isoDate)
	return nil
}

func (w *Wizard) SelectDate(isoDay string, today time.Time) error {
	if w.Step != StepSelectingDateTime {
		return ErrWrongStep
	}
	d, err := time.ParseInLocation(isoDate, isoDay, today.Location())
	if err != nil {
		return ErrInvalidDate
	}
	view, err := w.viewMonth(today.Location())
	if err != nil {
		return err
	}
	if d.Year() != view.Year() || d.Month() != view.Month() {
		return ErrDateOutOfView
	}
	if d.Before(timezone.Today(today)) {
		return ErrDateInPast
	}
	w.Date = d.Format(isoDate)
	return nil
}

func (w *Wizard) SelectTime(slot string) error {
	if w.Step != StepSelectingDateTime {
		return ErrWrongStep
	}
	if !IsValidSlot(slot) {
		return ErrInvalidSlot
	}
	w.Time = slot
	return nil
}

func (w *Wizard) Calendar(today time.Time) []CalendarDay {
	loc := today.Location()
	view, err := w.viewMonth(loc)
	if err != nil {
		view = startOfMonth(today)
	}
	var selected *time.Time
	if d, err := time.ParseInLocation(isoDate, w.Date, loc); err == nil {
		selected = &d
	}
	return MonthDays(view, today, selected)
}

// viewMonth relê o mês exibido em loc.
func (w *Wizard) viewMonth(loc *time.Location) (time.Time, error) {
	v, err := time.ParseInLocation(isoDate, w.ViewMonth, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return startOfMonth(v), nil
}

// ======================================================
// NAVEGAÇÃO
// ======================================================

func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepSelectingService:
		return w.Service != nil
	case StepSelectingProfessional:
		return w.Professional != nil
	default:
		return false
	}
}

// Next avança um passo; sem a seleção exigida o estado não muda.
func (w *Wizard) Next() error {
	if !w.CanAdvance() {
		return ErrStepBlocked
	}
	switch w.Step {
	case StepSelectingService:
		w.Step = StepSelectingProfessional
	case StepSelectingProfessional:
		w.Step = StepSelectingDateTime
	}
	return nil
}

func (w *Wizard) Back() error {
	switch w.Step {
	case StepSelectingService:
		w.Step = StepAborted
	case StepSelectingProfessional:
		w.Step = StepSelectingService
	case StepSelectingDateTime:
		w.Step = StepSelectingProfessional
	default:
		return ErrFinished
	}
	return nil
}

// ======================================================
// CONFIRMAÇÃO
// ======================================================

func (w *Wizard) CanConfirm() bool {
	return w.Step == StepSelectingDateTime &&
		w.Service != nil &&
		w.Professional != nil &&
		w.Date != "" &&
		w.Time != ""
}

func (w *Wizard) BeginSubmit() error {
	if w.Step == StepSubmitting || w.Step == StepSuccess || w.Step == StepAborted {
		return ErrFinished
	}
	if !w.CanConfirm() {
		return ErrIncomplete
	}
	w.Step = StepSubmitting
	return nil
}

// Fail devolve o fluxo para a escolha de data/hora após erro remoto.
func (w *Wizard) Fail() {
	if w.Step == StepSubmitting {
		w.Step = StepSelectingDateTime
	}
}

func (w *Wizard) Succeed(appointmentID uuid.UUID) {
	if w.Step == StepSubmitting {
		w.Step = StepSuccess
		w.AppointmentID = &appointmentID
	}
}

// Appointment monta o registro final; a reserva nasce sempre confirmada.
func (w *Wizard) Appointment(userID uuid.UUID, shop *models.Barbershop) models.Appointment {
	date := w.Date
	if d, err := time.Parse(isoDate, w.Date); err == nil {
		date = d.Format(localeDate)
	}
	return models.Appointment{
		UserID:           userID,
		BarbershopID:     shop.ID,
		BarbershopName:   shop.Name,
		ServiceName:      w.Service.Name,
		Price:            w.Service.Price,
		ProfessionalID:   w.Professional.ID,
		ProfessionalName: w.Professional.Name,
		Date:             date,
		Time:             w.Time,
		Status:           string(appointment.InitialStatus()),
	}
}
