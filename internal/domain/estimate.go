package domain

import "time"

const (
	DefaultWakeHour   = 7
	DefaultWakeMinute = 0
	DefaultSleepHours = 8.0
	DefaultCoffeeCups = 1

	MinSleepHours  = 4.0
	MaxSleepHours  = 12.0
	SleepHoursStep = 0.25
	MaxCoffeeCups  = 20

	ResultTitle = "Your ideal bedtime is…"
	ErrorTitle  = "Error"
)

// WakeTime is a time of day; only hour and minute are meaningful.
type WakeTime struct {
	Hour   int
	Minute int
}

// WakeTimeOf drops the date and seconds of t.
func WakeTimeOf(t time.Time) WakeTime {
	return WakeTime{Hour: t.Hour(), Minute: t.Minute()}
}

// SecondsSinceMidnight is the "wake" feature fed to the model.
func (w WakeTime) SecondsSinceMidnight() int {
	return w.Hour*3600 + w.Minute*60
}

// EstimateInput holds the three values a caller collects. Ranges are the caller's job.
type EstimateInput struct {
	Wake         WakeTime
	SleepAmount  float64
	CoffeeIntake int
}

// BedtimeEstimate is the wake time minus the predicted sleep, kept at minute precision.
type BedtimeEstimate struct {
	Hour                int
	Minute              int
	Formatted           string
	PredictedSleepHours float64
	// DaysBefore is 1 when the bedtime falls on the previous calendar day.
	DaysBefore int
}

// EstimateRequest is the request body for POST /v1/estimate.
// @Description Inputs collected by the form. Ranges match the form controls.
type EstimateRequest struct {
	// Desired wake-up hour (0-23)
	WakeHour *int `json:"wakeHour" validate:"required,min=0,max=23" example:"7" minimum:"0" maximum:"23"`
	// Desired wake-up minute (0-59)
	WakeMinute *int `json:"wakeMinute" validate:"required,min=0,max=59" example:"0" minimum:"0" maximum:"59"`
	// Desired amount of sleep in hours, 4-12 in steps of 0.25
	SleepHours *float64 `json:"sleepHours" validate:"required,min=4,max=12,quarterstep" example:"8" minimum:"4" maximum:"12"`
	// Daily coffee intake in cups (0-20)
	CoffeeCups *int `json:"coffeeCups" validate:"required,min=0,max=20" example:"1" minimum:"0" maximum:"20"`
}

// ToInput converts a validated request. Callers must run validation first.
func (r *EstimateRequest) ToInput() EstimateInput {
	return EstimateInput{
		Wake:         WakeTime{Hour: *r.WakeHour, Minute: *r.WakeMinute},
		SleepAmount:  *r.SleepHours,
		CoffeeIntake: *r.CoffeeCups,
	}
}

// EstimateResponse is the response body for POST /v1/estimate.
// @Description Recommended bedtime, time-of-day only.
type EstimateResponse struct {
	// Alert-style title shown above the bedtime
	Title string `json:"title" example:"Your ideal bedtime is…"`
	// Bedtime formatted as a short time of day
	Bedtime string `json:"bedtime" example:"10:48 PM"`
	// Bedtime hour (0-23)
	BedtimeHour int `json:"bedtimeHour" example:"22"`
	// Bedtime minute (0-59)
	BedtimeMinute int `json:"bedtimeMinute" example:"48"`
	// Sleep predicted by the model, in hours
	PredictedSleepHours float64 `json:"predictedSleepHours" example:"8.2"`
}

func (e *BedtimeEstimate) ToResponse() EstimateResponse {
	return EstimateResponse{
		Title:               ResultTitle,
		Bedtime:             e.Formatted,
		BedtimeHour:         e.Hour,
		BedtimeMinute:       e.Minute,
		PredictedSleepHours: e.PredictedSleepHours,
	}
}

// FormDefaults describes the input controls of the estimate form.
// @Description Default values, ranges and labels for the estimate form.
type FormDefaults struct {
	WakeHour       int               `json:"wakeHour" example:"7"`
	WakeMinute     int               `json:"wakeMinute" example:"0"`
	SleepHours     float64           `json:"sleepHours" example:"8"`
	SleepLabel     string            `json:"sleepLabel" example:"8 hours"`
	MinSleepHours  float64           `json:"minSleepHours" example:"4"`
	MaxSleepHours  float64           `json:"maxSleepHours" example:"12"`
	SleepHoursStep float64           `json:"sleepHoursStep" example:"0.25"`
	CoffeeCups     int               `json:"coffeeCups" example:"1"`
	MaxCoffeeCups  int               `json:"maxCoffeeCups" example:"20"`
	CupLabels      []CupOption       `json:"cupLabels"`
	Titles         map[string]string `json:"titles"`
}

// CupOption is one entry of the coffee picker.
type CupOption struct {
	Cups  int    `json:"cups" example:"1"`
	Label string `json:"label" example:"1 cup"`
}

// Defaults describes the form: initial values, ranges and picker labels.
func Defaults() FormDefaults {
	options := make([]CupOption, 0, MaxCoffeeCups+1)
	for cups := 0; cups <= MaxCoffeeCups; cups++ {
		options = append(options, CupOption{Cups: cups, Label: CupLabel(cups)})
	}

	return FormDefaults{
		WakeHour:       DefaultWakeHour,
		WakeMinute:     DefaultWakeMinute,
		SleepHours:     DefaultSleepHours,
		SleepLabel:     SleepLabel(DefaultSleepHours),
		MinSleepHours:  MinSleepHours,
		MaxSleepHours:  MaxSleepHours,
		SleepHoursStep: SleepHoursStep,
		CoffeeCups:     DefaultCoffeeCups,
		MaxCoffeeCups:  MaxCoffeeCups,
		CupLabels:      options,
		Titles: map[string]string{
			"result": ResultTitle,
			"error":  ErrorTitle,
		},
	}
}
