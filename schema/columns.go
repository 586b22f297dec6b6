package schema

import "github.com/samber/lo"

// Measured columns of the controller export.
const (
	EnergyConsumedHeating  = "energy_consumed_heating"  // kWh
	EnergyConsumedWater    = "energy_consumed_water"    // kWh
	EnergyConsumedCooling  = "energy_consumed_cooling"  // kWh
	EnergyConsumedTotal    = "energy_consumed_total"    // kWh
	EnergyGeneratedHeating = "energy_generated_heating" // kWh
	EnergyGeneratedWater   = "energy_generated_water"   // kWh
	EnergyGeneratedCooling = "energy_generated_cooling" // kWh
	EnergyGeneratedTotal   = "energy_generated_total"   // kWh
	CompressorHours        = "compressor_hours"
	CompressorHoursHeating = "compressor_hours_heating"
	CompressorHoursWater   = "compressor_hours_water"
	HeaterHours            = "heater_hours"
	CompressorStarts       = "compressor_starts"
	DefrostCycles          = "defrost_cycles"

	CopHeating = "cop_heating"
	CopWater   = "cop_water"
	CopTotal   = "cop_total"

	OutdoorTemp = "outdoor_temp" // °C
	WaterTemp   = "water_temp"   // °C
)

// ColumnDef describes one known column.
type ColumnDef struct {
	Name        string     `json:"name"`
	Role        ColumnRole `json:"role"`
	Description string     `json:"description"`
}

// KnownColumns is the registry of required columns in export order.
var KnownColumns = []ColumnDef{
	{EnergyConsumedHeating, AdditiveRole, "Electricity consumed for space heating (kWh)"},
	{EnergyConsumedWater, AdditiveRole, "Electricity consumed for hot water (kWh)"},
	{EnergyConsumedCooling, AdditiveRole, "Electricity consumed for cooling (kWh)"},
	{EnergyConsumedTotal, AdditiveRole, "Total electricity consumed (kWh)"},
	{EnergyGeneratedHeating, AdditiveRole, "Heat delivered to space heating (kWh)"},
	{EnergyGeneratedWater, AdditiveRole, "Heat delivered to hot water (kWh)"},
	{EnergyGeneratedCooling, AdditiveRole, "Cooling energy delivered (kWh)"},
	{EnergyGeneratedTotal, AdditiveRole, "Total energy delivered (kWh)"},
	{CompressorHours, AdditiveRole, "Compressor run hours"},
	{CompressorHoursHeating, AdditiveRole, "Compressor run hours in heating"},
	{CompressorHoursWater, AdditiveRole, "Compressor run hours for hot water"},
	{HeaterHours, AdditiveRole, "Backup heater run hours"},
	{CompressorStarts, AdditiveRole, "Compressor start count"},
	{DefrostCycles, AdditiveRole, "Defrost cycle count"},
	{CopHeating, IntensiveRatioRole, "Coefficient of performance, heating"},
	{CopWater, IntensiveRatioRole, "Coefficient of performance, hot water"},
	{CopTotal, IntensiveRatioRole, "Coefficient of performance, overall"},
	{OutdoorTemp, IntensivePlainRole, "Outdoor temperature (°C)"},
	{WaterTemp, IntensivePlainRole, "Water outlet temperature (°C)"},
}

var rolesByName = lo.SliceToMap(KnownColumns, func(c ColumnDef) (string, ColumnRole) {
	return c.Name, c.Role
})

// RoleOf returns the aggregation role of a column. Unknown columns are ignored.
func RoleOf(name string) ColumnRole {
	if name == DateColumn {
		return IdentifierRole
	}
	if role, ok := rolesByName[name]; ok {
		return role
	}
	return IgnoredRole
}

// RequiredColumns returns the names of every measured column, in registry order.
func RequiredColumns() []string {
	return lo.Map(KnownColumns, func(c ColumnDef, _ int) string { return c.Name })
}

// ColumnsWithRole returns the registry columns having the given role.
func ColumnsWithRole(role ColumnRole) []string {
	matched := lo.Filter(KnownColumns, func(c ColumnDef, _ int) bool { return c.Role == role })
	return lo.Map(matched, func(c ColumnDef, _ int) string { return c.Name })
}

// IsIntensive reports whether the role is averaged rather than summed.
func (r ColumnRole) IsIntensive() bool {
	return r == IntensiveRatioRole || r == IntensivePlainRole
}
