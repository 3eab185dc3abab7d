package models

// StationType distinguishes AC and DC charging stations.
type StationType string

const (
	StationTypeAC StationType = "AC"
	StationTypeDC StationType = "DC"
)

// Valid reports whether the station type is known.
func (t StationType) Valid() bool {
	return t == StationTypeAC || t == StationTypeDC
}

// ChargingStation is a bookable station. Schedule is an ordered list of
// human-readable time windows, e.g. "Mon-Fri 08:00-20:00".
type ChargingStation struct {
	ID             string        `bson:"_id,omitempty" json:"id"`
	Location       string        `bson:"location" json:"location"`
	Type           StationType   `bson:"type" json:"type"`
	SlotsAvailable int           `bson:"slotsAvailable" json:"slotsAvailable"`
	Status         AccountStatus `bson:"status" json:"status"`
	Schedule       []string      `bson:"schedule" json:"schedule"`
	Version        int64         `bson:"version" json:"-"`
}
