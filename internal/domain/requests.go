package domain

// Location is checked only for positive reports.
type ReportInfectionRequest struct {
	Location string `json:"location"`
	Positive *bool  `json:"positive" validate:"required"`
}

type ReportLocationRequest struct {
	Location string `json:"location" validate:"required,location"`
}

type SetRadiusRequest struct {
	RadiusMeters *uint64 `json:"radius_m" validate:"required,max=20000000"`
}

type ExposureRequest struct {
	Location         string `json:"location"`
	ThresholdSeconds uint64 `json:"threshold_seconds"`
}

type CountResponse struct {
	Count uint64 `json:"count"`
}

type RadiusResponse struct {
	RadiusMeters uint64 `json:"radius_m"`
}

type DistanceResponse struct {
	DistanceMeters uint64 `json:"distance_m"`
}
