package models

// GeoPoint is a GeoJSON point; coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a Point from a [longitude, latitude] pair.
func NewGeoPoint(coordinates []float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: coordinates}
}
