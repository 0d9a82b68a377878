package domain

import "errors"

var ErrFacilityNotFound = errors.New("facility not found")
var ErrInvalidFacilityName = errors.New("invalid facility name")

// Facility is a clinic site. Every user and client belongs to one.
type Facility struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Active   bool   `json:"active"`
}
