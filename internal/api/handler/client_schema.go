package handler

// dateLayout is the wire format for pickup dates.
const dateLayout = "2006-01-02"

// --- Request types ---

type registerClientRequest struct {
	ARTNumber  string  `json:"artNumber"  validate:"required"`
	FullName   string  `json:"fullName"   validate:"required"`
	Age        int     `json:"age"        validate:"required,gte=0,lte=150"`
	Address    string  `json:"address"    validate:"required"`
	NextPickup *string `json:"nextPickup" validate:"omitempty,datetime=2006-01-02"`
	FacilityID uint    `json:"facilityId"`
}

type updateClientRequest struct {
	FullName   *string `json:"fullName"`
	Age        *int    `json:"age"        validate:"omitempty,gte=0,lte=150"`
	Address    *string `json:"address"`
	NextPickup *string `json:"nextPickup" validate:"omitempty,datetime=2006-01-02"`
	// ClearPickup removes the scheduled pickup when true.
	ClearPickup bool    `json:"clearPickup"`
	Status      *string `json:"status" validate:"omitempty,oneof=active lost_to_followup transferred"`
}

type recordPickupRequest struct {
	NextPickup string `json:"nextPickup" validate:"required,datetime=2006-01-02"`
}

// --- Response types ---

// clientResponse is the wire representation of a client. The six documented
// fields are always present; nextPickup is null when no pickup is scheduled.
type clientResponse struct {
	ARTNumber  string  `json:"artNumber"`
	FullName   string  `json:"fullName"`
	Age        int     `json:"age"`
	Address    string  `json:"address"`
	NextPickup *string `json:"nextPickup"`
	Status     string  `json:"status"`
	FacilityID uint    `json:"facilityId,omitempty"`
}

type statsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	DueToday int `json:"dueToday"`
	Overdue  int `json:"overdue"`
}
