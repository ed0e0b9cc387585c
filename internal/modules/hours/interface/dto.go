package transport

import "negociosHorarios/internal/modules/hours/domain"

type dayScheduleRequest struct {
	IsOpen   bool   `json:"abierto"`
	OpensAt  string `json:"desde" validate:"required_if=IsOpen true,localtime"`
	ClosesAt string `json:"hasta" validate:"required_if=IsOpen true,localtime"`
}

// scheduleRequest is the "horarios" document sent by the listing editor and the wizard.
type scheduleRequest struct {
	Horarios map[string]dayScheduleRequest `json:"horarios" validate:"required,min=1,max=7,distinctdays,dive,keys,dayname,endkeys"`
}

func (r scheduleRequest) toSchedule() domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, len(r.Horarios))
	for key, rule := range r.Horarios {
		day, ok := domain.ResolveDay(key)
		if !ok {
			continue
		}
		schedule[day] = domain.DaySchedule{
			IsOpen:   rule.IsOpen,
			OpensAt:  domain.LocalTime(rule.OpensAt),
			ClosesAt: domain.LocalTime(rule.ClosesAt),
		}
	}
	return schedule
}

type extractRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type formatResponse struct {
	Compact string `json:"compact"`
	Legacy  string `json:"legacy"`
}
