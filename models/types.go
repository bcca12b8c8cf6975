package models

// Sort orders accepted by GET /results/sorted/
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Domain types

type Stage struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Country    string  `json:"country" db:"country"`
	Date       Date    `json:"date" db:"date"`
	LapLength  float64 `json:"lap_length" db:"lap_length"`
	Attendance *int64  `json:"attendance" db:"attendance"`
}

type Stable struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Country string  `json:"country" db:"country"`
	Motor   *string `json:"motor" db:"motor"`
	Tire    *string `json:"tire" db:"tire"`
}

type Result struct {
	ID         int64   `json:"id" db:"id"`
	StageID    int64   `json:"stage_id" db:"stage_id"`
	StableID   int64   `json:"stable_id" db:"stable_id"`
	DriverName string  `json:"driver_name" db:"driver_name"`
	RaceTime   float64 `json:"race_time" db:"race_time"`
	Laps       int64   `json:"laps" db:"laps"`
	PitStops   *int64  `json:"pit_stops" db:"pit_stops"`
	Position   *int64  `json:"position" db:"position"`
}

// ResultDetail is a result joined with the names of its stage and stable.
type ResultDetail struct {
	ID         int64   `json:"id" db:"id"`
	DriverName string  `json:"driver_name" db:"driver_name"`
	RaceTime   float64 `json:"race_time" db:"race_time"`
	StageName  string  `json:"stage_name" db:"stage_name"`
	StableName string  `json:"stable_name" db:"stable_name"`
}

type StageAverage struct {
	StageID     int64   `json:"stage_id" db:"stage_id"`
	AvgRaceTime float64 `json:"avg_race_time" db:"avg_race_time"`
}

// Request types

// Required fields are pointers so a missing key can be told apart from a zero value.
type CreateStageRequest struct {
	Name       string   `json:"name" validate:"notblank"`
	Country    string   `json:"country" validate:"notblank"`
	Date       *Date    `json:"date" validate:"required"`
	LapLength  *float64 `json:"lap_length" validate:"required,gt=0"`
	Attendance *int64   `json:"attendance" validate:"omitempty,gte=0"`
}

type CreateStableRequest struct {
	Name    string  `json:"name" validate:"notblank"`
	Country string  `json:"country" validate:"notblank"`
	Motor   *string `json:"motor"`
	Tire    *string `json:"tire"`
}

type CreateResultRequest struct {
	StageID    *int64   `json:"stage_id" validate:"required"`
	StableID   *int64   `json:"stable_id" validate:"required"`
	DriverName string   `json:"driver_name" validate:"notblank"`
	RaceTime   *float64 `json:"race_time" validate:"required,gt=0"`
	Laps       *int64   `json:"laps" validate:"required,gte=0"`
	PitStops   *int64   `json:"pit_stops" validate:"omitempty,gte=0"`
	Position   *int64   `json:"position" validate:"omitempty,min=1"`
}

type UpdateStageRequest struct {
	Name       Optional[string]  `json:"name"`
	Country    Optional[string]  `json:"country"`
	Date       Optional[Date]    `json:"date"`
	LapLength  Optional[float64] `json:"lap_length"`
	Attendance Optional[int64]   `json:"attendance"`
}

type UpdateStableRequest struct {
	Name    Optional[string] `json:"name"`
	Country Optional[string] `json:"country"`
	Motor   Optional[string] `json:"motor"`
	Tire    Optional[string] `json:"tire"`
}

type UpdateResultRequest struct {
	StageID    Optional[int64]   `json:"stage_id"`
	StableID   Optional[int64]   `json:"stable_id"`
	DriverName Optional[string]  `json:"driver_name"`
	RaceTime   Optional[float64] `json:"race_time"`
	Laps       Optional[int64]   `json:"laps"`
	PitStops   Optional[int64]   `json:"pit_stops"`
	Position   Optional[int64]   `json:"position"`
}

// Response types

type UpdateLapsResponse struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
