package dashboard

// OverviewResponse represents the headline dashboard numbers
type OverviewResponse struct {
	TotalPets        int64 `json:"totalPets"`
	PendingAdoptions int64 `json:"pendingAdoptions"`
	AdoptedPets      int64 `json:"adoptedPets"`
	ActiveVolunteers int64 `json:"activeVolunteers"`
}

// TrendPoint represents one month of adoption applications
type TrendPoint struct {
	Name string `json:"name"`
	Apps int    `json:"apps"`
}

// DistributionSlice represents one pet type in the distribution chart
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// RecentApplication represents one row of the recent applications table
type RecentApplication struct {
	ApplicationID   uint   `json:"applicationId"`
	UserID          uint   `json:"userId"`
	PetID           uint   `json:"petId"`
	ApplicantName   string `json:"applicantName"`
	PetName         string `json:"petName"`
	Status          string `json:"status"`
	ApplicationDate string `json:"applicationDate"`
}

// DashboardResponse aggregates all four dashboard sections
type DashboardResponse struct {
	Overview           *OverviewResponse   `json:"overview"`
	AdoptionTrend      []TrendPoint        `json:"adoptionTrend"`
	PetDistribution    []DistributionSlice `json:"petTypeDistribution"`
	RecentApplications []RecentApplication `json:"recentApplications"`
}
