package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reporta o nome do campo como aparece no JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterStructValidation(validateTrialSchedule, CreateTrialClassInput{})

	return v
}

// Validate aplica o schema declarado nas tags do input.
func Validate(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "input", Message: err.Error()}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return "is required"
		}
		return "must have at least " + fe.Param() + " characters"
	case "email":
		return "is invalid"
	case "len":
		return "must have exactly " + fe.Param() + " character(s)"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a valid date (YYYY-MM-DD) or ISO8601 datetime"
	case "horario":
		return "must be a valid time (HH:MM)"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}

func validateTrialSchedule(sl validator.StructLevel) {
	in := sl.Current().Interface().(CreateTrialClassInput)
	if in.DataAgendamento == "" || in.Horario == "" {
		return // min=1 já reportou
	}
	_, err := parseSchedule(in.DataAgendamento, in.Horario, time.UTC)
	switch {
	case errors.Is(err, errInvalidDate):
		sl.ReportError(in.DataAgendamento, "dataAgendamento", "DataAgendamento", "datetime", "")
	case errors.Is(err, errInvalidHorario):
		sl.ReportError(in.Horario, "horario", "Horario", "horario", "")
	}
}

var (
	errInvalidDate    = errors.New("data de agendamento inválida")
	errInvalidHorario = errors.New("horário inválido")
)

// parseSchedule monta o instante da aula. Aceita um datetime ISO8601 completo
// ou só a data (YYYY-MM-DD), que é combinada com o horário escolhido.
func parseSchedule(data, horario string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, data); err == nil {
		return t.UTC(), nil
	}

	day, err := time.ParseInLocation("2006-01-02", data, loc)
	if err != nil {
		return time.Time{}, errInvalidDate
	}

	slot, err := time.Parse("15:04", horario)
	if err != nil {
		return time.Time{}, errInvalidHorario
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour(), slot.Minute(), 0, 0, loc)
	return at.UTC(), nil
}
