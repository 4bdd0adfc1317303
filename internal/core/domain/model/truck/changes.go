package truck

// Changes is a partial update of a stored truck. Zero values and a nil Available keep the
// stored value.
type Changes struct {
	VIN          string
	Model        string
	LicensePlate string
	DailyRate    float64
	Available    *bool
}
