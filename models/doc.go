/*
Package models defines request, response, and domain types for the API.

# Domain Types

Rows as stored and returned:

  - Stage: a race event (name, country, date, lap_length, attendance)
  - Stable: a racing team (name, country, motor, tire)
  - Result: one driver's outcome in one stage for one stable
  - ResultDetail: a result joined with its stage and stable names
  - StageAverage: average race_time of the results of one stage

Nullable columns are pointers and serialize as JSON null.

# Request Types

Create requests hold required numeric fields as pointers so a missing key is
rejected instead of silently becoming zero:

  - CreateStageRequest
  - CreateStableRequest
  - CreateResultRequest

Update requests wrap every field in Optional so only the keys present in the
body are written:

	var req models.UpdateStageRequest
	json.Unmarshal([]byte(`{"attendance": null}`), &req)
	// req.Attendance.Set == true, req.Attendance.Null == true
	// req.Name.Set == false

All request types have a Validate method. Create requests are checked
against their validate struct tags with go-playground/validator; update
requests check the null rules of their Optional fields by hand.

# Dates

Date carries a calendar date and reads/writes "YYYY-MM-DD" on the wire and
in storage.
*/
package models
