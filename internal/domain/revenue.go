package domain

// RevenueRecognition enumerates how a plan's revenue is recognized.
type RevenueRecognition string

const (
	RecognitionSubscription  RevenueRecognition = "subscription"
	RecognitionServices      RevenueRecognition = "services"
	RecognitionTransactional RevenueRecognition = "transactional"
)

// RevenuePlan models one customer cohort: acquisition, churn, expansion,
// pricing and the optional straight-line revenue deferral queue.
type RevenuePlan struct {
	Name                  string             `json:"name"`
	Recognition           RevenueRecognition `json:"recognition"`
	InitialCustomers      float64            `json:"initial_customers"`
	InitialARPA           float64            `json:"initial_arpa"`
	NewCustomers          MonthlySchedule    `json:"new_customers"`
	ChurnRate             MonthlySchedule    `json:"churn_rate"`
	ExpansionRate         MonthlySchedule    `json:"expansion_rate"`
	ContractionRate       MonthlySchedule    `json:"contraction_rate"`
	DiscountRate          MonthlySchedule    `json:"discount_rate"`
	ARPAGrowthRate        MonthlySchedule    `json:"arpa_growth_rate"`
	SeasonalPattern       SeasonalPattern    `json:"seasonal_pattern"`
	RampUp                RampUpSettings     `json:"ramp_up"`
	RevenueDeferralMonths int                `json:"revenue_deferral_months"`
	ServicesAttachRate    float64            `json:"services_attach_rate"`
	ServicesASP           float64            `json:"services_asp"`
	// TransactionalRate is carried in the schema but not applied; only
	// volume x fee enters the revenue build.
	TransactionalRate   float64         `json:"transactional_rate"`
	TransactionalVolume MonthlySchedule `json:"transactional_volume"`
	TransactionalFee    float64         `json:"transactional_fee"`
}

// RevenueModel groups all revenue plans plus the plan-independent streams.
type RevenueModel struct {
	Plans                       []RevenuePlan      `json:"plans"`
	OtherRecurringRevenue       MonthlySchedule    `json:"other_recurring_revenue"`
	ProfessionalServicesRevenue MonthlySchedule    `json:"professional_services_revenue"`
	Adjustments                 map[string]float64 `json:"adjustments,omitempty"`
}

// RevenueSummary is one month's aggregated revenue contribution.
type RevenueSummary struct {
	TotalGross     float64 `json:"total_gross"`
	TotalNet       float64 `json:"total_net"`
	TotalChurn     float64 `json:"total_churn"`
	TotalExpansion float64 `json:"total_expansion"`
	ARR            float64 `json:"arr"`
}
