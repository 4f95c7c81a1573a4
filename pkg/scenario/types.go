package scenario

// SourceKind identifies the technology behind a power source.
type SourceKind string

const (
	KindGrid  SourceKind = "grid"
	KindSolar SourceKind = "solar"
	KindWind  SourceKind = "wind"
)

// Scenario is the top-level input for one LCOH simulation.
type Scenario struct {
	SpecVersion  string             `yaml:"spec_version" json:"spec_version"`
	Plant        PlantDef           `yaml:"plant" json:"plant"`
	Electrolyzer ElectrolyzerConfig `yaml:"electrolyzer" json:"electrolyzer"`
	Financial    FinancialParams    `yaml:"financial" json:"financial"`
	Sources      []PowerSource      `yaml:"sources" json:"sources"`
}

// PlantDef carries descriptive metadata about the plant being evaluated.
type PlantDef struct {
	Name string `yaml:"name" json:"name"`
	Year int    `yaml:"year" json:"year"`
}

// Location is a geographic point used to fetch generation profiles.
type Location struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// PowerSource is the raw configuration of one supply source. It never
// carries derived quantities; LCOE and normalized profiles are computed
// per run from this record.
type PowerSource struct {
	Name          string     `yaml:"name" json:"name"`
	Kind          SourceKind `yaml:"kind" json:"kind"`
	CapacityMW    float64    `yaml:"capacity_mw" json:"capacity_mw"`
	CapexPerKW    float64    `yaml:"capex_per_kw" json:"capex_per_kw"`
	OpexPerKWYear float64    `yaml:"opex_per_kw_year" json:"opex_per_kw_year"`

	// GridPriceKWh is the fixed electricity price for grid sources,
	// in $/kWh. It doubles as the grid source's LCOE.
	GridPriceKWh float64 `yaml:"grid_price_kwh,omitempty" json:"grid_price_kwh,omitempty"`

	// Location and Year drive profile retrieval for solar and wind.
	Location *Location `yaml:"location,omitempty" json:"location,omitempty"`
	Year     int       `yaml:"year,omitempty" json:"year,omitempty"`

	// CapacityFactors is an optional pre-supplied hourly profile, one
	// fraction per hour of the year. Normally filled by a profile
	// provider rather than the scenario file.
	CapacityFactors []float64 `yaml:"capacity_factors,omitempty" json:"capacity_factors,omitempty"`
}

// IsGrid reports whether the source draws from the grid at a fixed price.
func (p PowerSource) IsGrid() bool {
	return p.Kind == KindGrid
}

// HasProfile reports whether an hourly generation profile is attached.
func (p PowerSource) HasProfile() bool {
	return len(p.CapacityFactors) > 0
}

// ElectrolyzerConfig sizes and prices the electrolyzer stack.
type ElectrolyzerConfig struct {
	CapacityMW              float64 `yaml:"capacity_mw" json:"capacity_mw"`
	CapexPerKW              float64 `yaml:"capex_per_kw" json:"capex_per_kw"`
	OpexPerKWYear           float64 `yaml:"opex_per_kw_year" json:"opex_per_kw_year"`
	EfficiencyPct           float64 `yaml:"efficiency_pct" json:"efficiency_pct"`
	BaseConsumptionKWhPerKg float64 `yaml:"base_consumption_kwh_per_kg" json:"base_consumption_kwh_per_kg"`
}

// EnergyPerKg returns the effective electricity demand per kilogram of
// hydrogen, after applying stack efficiency.
func (e ElectrolyzerConfig) EnergyPerKg() float64 {
	if e.EfficiencyPct <= 0 {
		return 0
	}
	return e.BaseConsumptionKWhPerKg / (e.EfficiencyPct / 100.0)
}

// FinancialParams are the project-wide financing assumptions.
type FinancialParams struct {
	ReturnRatePct            float64 `yaml:"return_rate_pct" json:"return_rate_pct"`
	LifetimeYears            int     `yaml:"lifetime_years" json:"lifetime_years"`
	DefaultCapacityFactorPct float64 `yaml:"default_capacity_factor_pct" json:"default_capacity_factor_pct"`
}

// Rate returns the discount rate as a fraction.
func (f FinancialParams) Rate() float64 {
	return f.ReturnRatePct / 100.0
}

// DefaultCapacityFactor returns the fallback capacity factor as a fraction.
func (f FinancialParams) DefaultCapacityFactor() float64 {
	return f.DefaultCapacityFactorPct / 100.0
}
