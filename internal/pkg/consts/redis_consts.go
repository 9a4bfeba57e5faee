package consts

import "time"

const (
	RequestMarkerKeyPrefix = "documentstore:request:"
	RequestMarkerTTL       = 24 * time.Hour
)
